package extractor

import (
	"fmt"
	"strings"
)

// Parameter is one parameter descriptor of a command signature
type Parameter struct {
	Name              string
	Type              TargetType
	Required          bool
	Flag              bool
	Completion        string
	Choices           []string
	Documentation     string
	Deprecated        bool
	DeprecatedMessage string
}

// Signature is the synthesized command signature for one operation, ready to
// be rendered as Nushell source text
type Signature struct {
	Service       string
	OriginalName  string
	Command       string
	Parameters    []Parameter
	Return        TargetType
	Documentation string
	Note          string
	Pagination    PaginationDescriptor
}

// dynamicResource maps a parameter-name pattern to the live-resource completer
// it should use. Checked in order; first match wins.
type dynamicResource struct {
	pattern   string
	completer string
}

var dynamicResources = []dynamicResource{
	{"bucket", "buckets"},
	{"instanceid", "instances"},
	{"functionname", "functions"},
	{"tablename", "tables"},
	{"queueurl", "queues"},
	{"rolename", "roles"},
	{"username", "users"},
	{"groupname", "groups"},
	{"stackname", "stacks"},
	{"clustername", "clusters"},
	{"topicarn", "topics"},
	{"keyid", "keys"},
	{"vpcid", "vpcs"},
	{"subnetid", "subnets"},
	{"securitygroupid", "security-groups"},
}

// AssembleSignature composes an operation's resolved input and output, its
// pagination context and the type-mapping rules into a final command
// signature. Malformed operations still yield a signature, with any-typed
// fallbacks and an explanatory note, never an error.
func AssembleSignature(service string, op Operation, pag PaginationDescriptor) Signature {
	sig := Signature{
		Service:       service,
		OriginalName:  op.OriginalName,
		Command:       fmt.Sprintf("aws %s %s", service, op.Name),
		Documentation: docSummary(op.Documentation),
		Pagination:    pag,
	}
	if op.Deprecated {
		msg := op.DeprecatedMessage
		if msg == "" {
			msg = "this operation is deprecated"
		}
		sig.Note = "DEPRECATED: " + docSummary(msg)
	}

	sig.Parameters = assembleParameters(service, op, &sig)
	sig.Return = assembleReturn(op, &sig)
	return sig
}

// assembleParameters builds the ordered parameter list: required members
// first, positional, in declared order; then optional members as named flags,
// in declared order. Boolean flags carry no type annotation.
func assembleParameters(service string, op Operation, sig *Signature) []Parameter {
	if op.Input == nil {
		return nil
	}

	if op.Input.Kind != KindStructure {
		// unresolvable input shape: a single any-typed positional keeps the
		// generated command callable
		appendNote(sig, "input shape could not be resolved; parameters degraded to any")
		return []Parameter{{Name: "input", Type: TargetType{Kind: TypeAny}}}
	}

	var required, optional []Parameter
	for _, m := range op.Input.Members {
		p := Parameter{
			Name:              KebabCase(m.Name),
			Type:              MapType(m.Shape, m.Name),
			Required:          m.Required,
			Flag:              !m.Required,
			Documentation:     docSummary(m.Documentation),
			Deprecated:        m.Deprecated,
			DeprecatedMessage: m.DeprecatedMessage,
		}

		if len(p.Type.Choices) > 0 {
			p.Choices = p.Type.Choices
			p.Completion = fmt.Sprintf("nu-complete aws %s %s %s", service, op.Name, p.Name)
		} else if completer := dynamicCompleter(m.Name); completer != "" {
			p.Completion = "nu-complete aws " + completer
		}

		if m.Required {
			required = append(required, p)
		} else {
			optional = append(optional, p)
		}
	}

	return append(required, optional...)
}

// assembleReturn maps the resolved output shape to the command's return type
func assembleReturn(op Operation, sig *Signature) TargetType {
	if op.Output == nil || op.Output.IsEmptyStructure() {
		return TargetType{Kind: TypeNothing}
	}
	if op.Output.Kind == KindAny && !op.Output.SelfRef && !op.Output.Union {
		appendNote(sig, "output shape could not be resolved; return type degraded to any")
		return TargetType{Kind: TypeAny}
	}
	return MapType(op.Output, "")
}

// dynamicCompleter returns the live-resource completer tag for a parameter
// name, or empty when no pattern matches
func dynamicCompleter(memberName string) string {
	norm := normalizeFieldName(memberName)
	for _, dr := range dynamicResources {
		if strings.Contains(norm, dr.pattern) {
			return dr.completer
		}
	}
	return ""
}

func appendNote(sig *Signature, note string) {
	if sig.Note == "" {
		sig.Note = note
		return
	}
	sig.Note += "; " + note
}

// Render emits the signature as Nushell source text:
//
//	# Returns a list of all buckets owned by the sender
//	export def "aws s3 list-buckets" [
//	    --max-keys: int    # maximum number of keys returned
//	]: nothing -> table
func (s Signature) Render() string {
	var b strings.Builder

	if s.Documentation != "" {
		b.WriteString("# " + s.Documentation + "\n")
	}
	if s.Note != "" {
		b.WriteString("# NOTE: " + s.Note + "\n")
	}

	if len(s.Parameters) == 0 {
		b.WriteString(fmt.Sprintf("export def %q []: nothing -> %s", s.Command, s.Return.Nu()))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("export def %q [\n", s.Command))
	for _, p := range s.Parameters {
		b.WriteString("    " + renderParameter(p) + "\n")
	}
	b.WriteString(fmt.Sprintf("]: nothing -> %s", s.Return.Nu()))
	return b.String()
}

// renderParameter renders one parameter line, with its documentation or
// deprecation message as a trailing comment
func renderParameter(p Parameter) string {
	var tok string
	switch {
	case p.Flag && p.Type.Kind == TypeBool:
		// boolean flags are switches: no type annotation
		tok = "--" + p.Name
	case p.Flag:
		tok = "--" + p.Name + ": " + renderParamType(p)
	case p.Required:
		tok = p.Name + ": " + renderParamType(p)
	default:
		// degraded positional (unresolvable input)
		tok = p.Name + "?: " + renderParamType(p)
	}

	comment := p.Documentation
	if p.Deprecated {
		comment = "DEPRECATED"
		if p.DeprecatedMessage != "" {
			comment = "DEPRECATED: " + docSummary(p.DeprecatedMessage)
		}
	}
	if comment != "" {
		tok += "  # " + comment
	}
	return tok
}

func renderParamType(p Parameter) string {
	if p.Completion != "" {
		return fmt.Sprintf("%s@%q", p.Type.Nu(), p.Completion)
	}
	return p.Type.Nu()
}

// docSummary reduces model documentation (typically HTML) to a single plain
// comment line: tags stripped, whitespace collapsed, cut at the first
// sentence, capped at 160 runes
func docSummary(doc string) string {
	if doc == "" {
		return ""
	}

	var sb strings.Builder
	inTag := false
	for _, r := range doc {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			sb.WriteByte(' ')
		case !inTag:
			sb.WriteRune(r)
		}
	}

	out := strings.Join(strings.Fields(sb.String()), " ")
	if idx := strings.Index(out, ". "); idx >= 0 {
		out = out[:idx+1]
	}
	runes := []rune(out)
	if len(runes) > 160 {
		out = string(runes[:157]) + "..."
	}
	return out
}
