package loopcms

import "github.com/looprevenue/loop-cms/internal/runtimeconfig"

var (
	ErrPreviewBaseURLRequired      = runtimeconfig.ErrPreviewBaseURLRequired
	ErrResourcesContentDirRequired = runtimeconfig.ErrResourcesContentDirRequired
	ErrResourcesFeatureRequired    = runtimeconfig.ErrResourcesFeatureRequired
	ErrResourceLimitInvalid        = runtimeconfig.ErrResourceLimitInvalid
	ErrResourceMaxLimitInvalid     = runtimeconfig.ErrResourceMaxLimitInvalid
	ErrLoggingProviderRequired     = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown      = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid         = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid        = runtimeconfig.ErrLoggingFormatInvalid
	ErrStorageProviderUnknown      = runtimeconfig.ErrStorageProviderUnknown
)

type (
	Config          = runtimeconfig.Config
	StorageConfig   = runtimeconfig.StorageConfig
	CacheConfig     = runtimeconfig.CacheConfig
	PreviewConfig   = runtimeconfig.PreviewConfig
	ResourcesConfig = runtimeconfig.ResourcesConfig
	SlotsConfig     = runtimeconfig.SlotsConfig
	CommandsConfig  = runtimeconfig.CommandsConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
