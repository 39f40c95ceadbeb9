// Package projectfeatures provides project feature descriptors.
package projectfeatures

import (
	"github.com/sourceplane/litedsl/internal/compound"
	"github.com/sourceplane/litedsl/internal/model"
	"github.com/sourceplane/litedsl/internal/params"
	"github.com/sourceplane/litedsl/internal/validate"
)

// S3StorageType is the feature type of S3Storage
const S3StorageType = "storage_settings"

// AwsEnvironment selects the AWS endpoint.
type AwsEnvironment interface {
	compound.Variant
}

var (
	awsRegionName = params.NewString("awsRegionName", "aws.region.name", params.Doc("AWS region"))
	awsEndpoint   = params.NewString("endpoint", "aws.service.endpoint", params.Mandatory(),
		params.Doc("Service endpoint URL"))
)

// DefaultEnvironment uses the public AWS endpoints. Its tag is empty.
type DefaultEnvironment struct{ compound.Base }

func NewDefaultEnvironment() *DefaultEnvironment {
	return &DefaultEnvironment{Base: compound.NewBase("")}
}

func (e *DefaultEnvironment) Fields() []params.Field        { return []params.Field{awsRegionName} }
func (e *DefaultEnvironment) AwsRegionName() (string, bool) { return awsRegionName.Get(e.Params()) }
func (e *DefaultEnvironment) SetAwsRegionName(v string)     { awsRegionName.Set(e.Params(), v) }

// CustomEnvironment targets an S3 compatible endpoint.
type CustomEnvironment struct{ compound.Base }

func NewCustomEnvironment() *CustomEnvironment {
	return &CustomEnvironment{Base: compound.NewBase("custom")}
}

func (e *CustomEnvironment) Fields() []params.Field        { return []params.Field{awsEndpoint, awsRegionName} }
func (e *CustomEnvironment) Endpoint() (string, bool)      { return awsEndpoint.Get(e.Params()) }
func (e *CustomEnvironment) SetEndpoint(v string)          { awsEndpoint.Set(e.Params(), v) }
func (e *CustomEnvironment) AwsRegionName() (string, bool) { return awsRegionName.Get(e.Params()) }
func (e *CustomEnvironment) SetAwsRegionName(v string)     { awsRegionName.Set(e.Params(), v) }

// Credentials selects how storage authenticates to AWS.
type Credentials interface {
	compound.Variant
}

var (
	iamRoleARN = params.NewString("iamRoleARN", "aws.iam.role.arn", params.Mandatory(), params.Doc("IAM role to assume"))
	externalID = params.NewString("externalID", "aws.external.id")
)

// AccessKeys uses static access keys.
type AccessKeys struct{ compound.Base }

func NewAccessKeys() *AccessKeys { return &AccessKeys{Base: compound.NewBase("aws.access.keys")} }

func (c *AccessKeys) Fields() []params.Field { return nil }

// TemporaryCredentials assumes an IAM role.
type TemporaryCredentials struct{ compound.Base }

func NewTemporaryCredentials() *TemporaryCredentials {
	return &TemporaryCredentials{Base: compound.NewBase("aws.temp.credentials")}
}

func (c *TemporaryCredentials) Fields() []params.Field     { return []params.Field{iamRoleARN, externalID} }
func (c *TemporaryCredentials) IAMRoleARN() (string, bool) { return iamRoleARN.Get(c.Params()) }
func (c *TemporaryCredentials) SetIAMRoleARN(v string)     { iamRoleARN.Set(c.Params(), v) }
func (c *TemporaryCredentials) ExternalID() (string, bool) { return externalID.Get(c.Params()) }
func (c *TemporaryCredentials) SetExternalID(v string)     { externalID.Set(c.Params(), v) }

var (
	storageName              = params.NewString("storageName", "storage.name")
	bucketName               = params.NewString("bucketName", "storage.s3.bucket.name", params.Mandatory())
	bucketPrefix             = params.NewString("bucketPrefix", "storage.s3.bucket.prefix")
	enablePresignedURLUpload = params.NewBoolEncoded("enablePresignedURLUpload", "storage.s3.upload.presignedUrl.enabled", "true", "")
	forceVirtualHost         = params.NewBool("forceVirtualHostAddressing", "storage.s3.forceVirtualHostAddressing")
	multipartThreshold       = params.NewString("multipartThreshold", "storage.s3.upload.multipart_threshold",
		params.Doc("Initiate multipart upload at this size, e.g. 8MB"))
	multipartChunksize = params.NewString("multipartChunksize", "storage.s3.upload.multipart_chunksize",
		params.Doc("Multipart upload part size, e.g. 8MB"))
	cloudFrontEnabled              = params.NewBoolEncoded("cloudFrontEnabled", "storage.s3.cloudfront.enabled", "true", "")
	cloudFrontUploadDistribution   = params.NewString("cloudFrontUploadDistribution", "storage.s3.cloudfront.upload.distribution")
	cloudFrontDownloadDistribution = params.NewString("cloudFrontDownloadDistribution", "storage.s3.cloudfront.download.distribution")
	cloudFrontPublicKeyID          = params.NewString("cloudFrontPublicKeyId", "storage.s3.cloudfront.publicKeyId")
	cloudFrontPrivateKey           = params.NewString("cloudFrontPrivateKey", "secure:storage.s3.cloudfront.privateKey")
	useDefaultCredentialChain      = params.NewBool("useDefaultCredentialProviderChain", "aws.use.default.credential.provider.chain")
	accessKey                      = params.NewString("accessKey", "secure:aws.secret.access.key", params.Doc("AWS secret access key"))
	accessKeyID                    = params.NewString("accessKeyID", "aws.access.key.id", params.Doc("AWS access key id"))

	awsEnvironment = compound.NewField("awsEnvironment", "aws.environment",
		compound.NewRegistry(
			compound.Option[AwsEnvironment]{Name: "default", Doc: "Public AWS endpoints",
				New: func() AwsEnvironment { return NewDefaultEnvironment() }},
			compound.Option[AwsEnvironment]{Name: "custom", Doc: "Custom S3 compatible endpoint",
				New: func() AwsEnvironment { return NewCustomEnvironment() }},
		))
	credentials = compound.NewField("credentials", "aws.credentials.type",
		compound.NewRegistry(
			compound.Option[Credentials]{Name: "accessKeys", Doc: "Static access keys",
				New: func() Credentials { return NewAccessKeys() }},
			compound.Option[Credentials]{Name: "temporary", Doc: "Temporary credentials of an assumed role",
				New: func() Credentials { return NewTemporaryCredentials() }},
		))
)

// S3Storage stores build artifacts in Amazon S3.
type S3Storage struct {
	model.Entity
}

func NewS3Storage() *S3Storage {
	s := &S3Storage{Entity: model.NewEntity(model.KindProjectFeature, S3StorageType)}
	s.Param("storage.type", "S3_storage")
	s.Param("storage.s3.bucket.name.wasProvidedAsString", "true")
	return s
}

func (s *S3Storage) Fields() []params.Field {
	return []params.Field{
		storageName, bucketName, bucketPrefix, enablePresignedURLUpload, forceVirtualHost,
		multipartThreshold, multipartChunksize,
		cloudFrontEnabled, cloudFrontUploadDistribution, cloudFrontDownloadDistribution,
		cloudFrontPublicKeyID, cloudFrontPrivateKey,
		useDefaultCredentialChain, accessKey, awsEnvironment, credentials, accessKeyID,
	}
}

func (s *S3Storage) Validate(c validate.ErrorConsumer) {
	s.ValidateFields(c, s.Fields())
}

func (s *S3Storage) StorageName() (string, bool)  { return storageName.Get(s.Params()) }
func (s *S3Storage) SetStorageName(v string)      { storageName.Set(s.Params(), v) }
func (s *S3Storage) BucketName() (string, bool)   { return bucketName.Get(s.Params()) }
func (s *S3Storage) SetBucketName(v string)       { bucketName.Set(s.Params(), v) }
func (s *S3Storage) BucketPrefix() (string, bool) { return bucketPrefix.Get(s.Params()) }
func (s *S3Storage) SetBucketPrefix(v string)     { bucketPrefix.Set(s.Params(), v) }

func (s *S3Storage) EnablePresignedURLUpload() (bool, bool) {
	return enablePresignedURLUpload.Get(s.Params())
}

func (s *S3Storage) SetEnablePresignedURLUpload(v bool) { enablePresignedURLUpload.Set(s.Params(), v) }

func (s *S3Storage) ForceVirtualHostAddressing() (bool, bool) { return forceVirtualHost.Get(s.Params()) }
func (s *S3Storage) SetForceVirtualHostAddressing(v bool)     { forceVirtualHost.Set(s.Params(), v) }

func (s *S3Storage) MultipartThreshold() (string, bool) { return multipartThreshold.Get(s.Params()) }
func (s *S3Storage) SetMultipartThreshold(v string)     { multipartThreshold.Set(s.Params(), v) }
func (s *S3Storage) MultipartChunksize() (string, bool) { return multipartChunksize.Get(s.Params()) }
func (s *S3Storage) SetMultipartChunksize(v string)     { multipartChunksize.Set(s.Params(), v) }

func (s *S3Storage) CloudFrontEnabled() (bool, bool) { return cloudFrontEnabled.Get(s.Params()) }
func (s *S3Storage) SetCloudFrontEnabled(v bool)     { cloudFrontEnabled.Set(s.Params(), v) }

func (s *S3Storage) CloudFrontUploadDistribution() (string, bool) {
	return cloudFrontUploadDistribution.Get(s.Params())
}

func (s *S3Storage) SetCloudFrontUploadDistribution(v string) {
	cloudFrontUploadDistribution.Set(s.Params(), v)
}

func (s *S3Storage) CloudFrontDownloadDistribution() (string, bool) {
	return cloudFrontDownloadDistribution.Get(s.Params())
}

func (s *S3Storage) SetCloudFrontDownloadDistribution(v string) {
	cloudFrontDownloadDistribution.Set(s.Params(), v)
}

func (s *S3Storage) CloudFrontPublicKeyID() (string, bool) { return cloudFrontPublicKeyID.Get(s.Params()) }
func (s *S3Storage) SetCloudFrontPublicKeyID(v string)     { cloudFrontPublicKeyID.Set(s.Params(), v) }
func (s *S3Storage) CloudFrontPrivateKey() (string, bool)  { return cloudFrontPrivateKey.Get(s.Params()) }
func (s *S3Storage) SetCloudFrontPrivateKey(v string)      { cloudFrontPrivateKey.Set(s.Params(), v) }

func (s *S3Storage) UseDefaultCredentialProviderChain() (bool, bool) {
	return useDefaultCredentialChain.Get(s.Params())
}

func (s *S3Storage) SetUseDefaultCredentialProviderChain(v bool) {
	useDefaultCredentialChain.Set(s.Params(), v)
}

func (s *S3Storage) AccessKey() (string, bool)   { return accessKey.Get(s.Params()) }
func (s *S3Storage) SetAccessKey(v string)       { accessKey.Set(s.Params(), v) }
func (s *S3Storage) AccessKeyID() (string, bool) { return accessKeyID.Get(s.Params()) }
func (s *S3Storage) SetAccessKeyID(v string)     { accessKeyID.Set(s.Params(), v) }

func (s *S3Storage) AwsEnvironment() (AwsEnvironment, bool, error) { return awsEnvironment.Get(s.Params()) }
func (s *S3Storage) SetAwsEnvironment(v AwsEnvironment)            { awsEnvironment.Set(s.Params(), v) }

func (s *S3Storage) Credentials() (Credentials, bool, error) { return credentials.Get(s.Params()) }
func (s *S3Storage) SetCredentials(v Credentials)            { credentials.Set(s.Params(), v) }
