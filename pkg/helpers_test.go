package extractor

// Shared model fixtures for the package tests. testModel approximates a small
// S3-flavored service with enough variety to exercise every pipeline branch.

func f64Ptr(f float64) *float64 { return &f }

func testShapes() map[string]*RawShape {
	return map[string]*RawShape{
		"BucketName":  {Type: "string"},
		"MaxKeys":     {Type: "integer", Min: f64Ptr(1)},
		"ContentSize": {Type: "long"},
		"CreatedAt":   {Type: "timestamp"},
		"Payload":     {Type: "blob"},
		"DryRun":      {Type: "boolean"},
		"StorageClass": {
			Type: "string",
			Enum: []string{"STANDARD", "GLACIER", "DEEP_ARCHIVE"},
		},
		"Tag": {
			Type: "structure",
			Members: MemberList{
				{Name: "Key", Ref: ShapeRef{Shape: "BucketName"}},
				{Name: "Value", Ref: ShapeRef{Shape: "BucketName"}},
			},
		},
		"TagList": {
			Type:   "list",
			Member: &ShapeRef{Shape: "Tag"},
		},
		"NameList": {
			Type:   "list",
			Member: &ShapeRef{Shape: "BucketName"},
		},
		"Metadata": {
			Type:  "map",
			Key:   &ShapeRef{Shape: "BucketName"},
			Value: &ShapeRef{Shape: "BucketName"},
		},
		"TreeNode": {
			Type: "structure",
			Members: MemberList{
				{Name: "Name", Ref: ShapeRef{Shape: "BucketName"}},
				{Name: "Parent", Ref: ShapeRef{Shape: "TreeNode"}},
			},
		},
		"TreeNodeList": {
			Type:   "list",
			Member: &ShapeRef{Shape: "TreeNode"},
		},
		"EventSelector": {
			Type:  "structure",
			Union: true,
			Members: MemberList{
				{Name: "ByName", Ref: ShapeRef{Shape: "BucketName"}},
				{Name: "ByDate", Ref: ShapeRef{Shape: "CreatedAt"}},
			},
		},
		"NoSuchBucket": {
			Type:          "structure",
			Exception:     true,
			Error:         &RawError{HTTPStatusCode: 404},
			Documentation: "The specified bucket does not exist.",
		},
		"TooManyRequests": {
			Type:      "structure",
			Exception: true,
			Error:     &RawError{HTTPStatusCode: 429},
			Retryable: &RawRetryable{Throttling: true},
		},
		"ListBucketsRequest": {
			Type: "structure",
			Members: MemberList{
				{Name: "Prefix", Ref: ShapeRef{Shape: "BucketName", Documentation: "Limits the response to keys with this prefix."}},
				{Name: "MaxKeys", Ref: ShapeRef{Shape: "MaxKeys"}},
				{Name: "NextToken", Ref: ShapeRef{Shape: "BucketName"}},
			},
		},
		"Bucket": {
			Type: "structure",
			Members: MemberList{
				{Name: "Name", Ref: ShapeRef{Shape: "BucketName"}},
				{Name: "CreationDate", Ref: ShapeRef{Shape: "CreatedAt"}},
			},
		},
		"BucketList": {
			Type:   "list",
			Member: &ShapeRef{Shape: "Bucket"},
		},
		"ListBucketsOutput": {
			Type: "structure",
			Members: MemberList{
				{Name: "Buckets", Ref: ShapeRef{Shape: "BucketList"}},
				{Name: "NextToken", Ref: ShapeRef{Shape: "BucketName"}},
			},
		},
		"CreateBucketRequest": {
			Type:     "structure",
			Required: []string{"Bucket"},
			Members: MemberList{
				{Name: "Bucket", Ref: ShapeRef{Shape: "BucketName", Documentation: "The name of the bucket to create."}},
				{Name: "StorageClass", Ref: ShapeRef{Shape: "StorageClass"}},
				{Name: "DryRun", Ref: ShapeRef{Shape: "DryRun"}},
				{Name: "GrantRead", Ref: ShapeRef{Shape: "BucketName", Deprecated: true, DeprecatedMessage: "Use bucket policies instead."}},
			},
		},
	}
}

func testModel() *ServiceModel {
	return &ServiceModel{
		Metadata: ModelMetadata{
			APIVersion:       "2006-03-01",
			Protocol:         "rest-xml",
			ServiceFullName:  "Amazon Simple Storage Service",
			EndpointPrefix:   "s3",
			SignatureVersion: "s3v4",
		},
		Operations: RawOperationList{
			{Key: "ListBuckets", Op: RawOperation{
				Name:          "ListBuckets",
				HTTP:          &RawHTTP{Method: "GET", RequestURI: "/"},
				Input:         &ShapeRef{Shape: "ListBucketsRequest"},
				Output:        &ShapeRef{Shape: "ListBucketsOutput"},
				Documentation: "<p>Returns a list of all buckets owned by the sender.</p>",
			}},
			{Key: "CreateBucket", Op: RawOperation{
				Name:   "CreateBucket",
				HTTP:   &RawHTTP{Method: "PUT", RequestURI: "/{Bucket}"},
				Input:  &ShapeRef{Shape: "CreateBucketRequest"},
				Errors: []ShapeRef{{Shape: "NoSuchBucket"}},
			}},
			{Key: "DeleteBucket", Op: RawOperation{
				Name:  "DeleteBucket",
				Input: &ShapeRef{Shape: "CreateBucketRequest"},
			}},
		},
		Shapes: testShapes(),
	}
}
