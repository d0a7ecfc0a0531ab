package curriculum

import "github.com/goliatone/go-curriculum/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrCommandsRequireLoader   = runtimeconfig.ErrCommandsRequireLoader
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ContentConfig  = runtimeconfig.ContentConfig
	Features       = runtimeconfig.Features
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
