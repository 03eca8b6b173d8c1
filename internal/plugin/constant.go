package plugin

// Log prefixes
const (
	LogPrefixRegister = "internal.plugin.Register"
	LogPrefixRoute    = "internal.plugin.Route"
	LogPrefixDescribe = "internal.plugin.Descriptors"
)

// Operations reported on Error
const (
	OpRegister  = "register"
	OpCanHandle = "can_handle"
	OpExecute   = "execute"
)
