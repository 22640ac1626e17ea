package wpapi

import "github.com/kelseyhightower/envconfig"

const (
	DefaultEnvPrefix = "WPAPI"
)

// OptionsFromEnv reads Options from {PREFIX}_ENDPOINT, {PREFIX}_USERNAME, {PREFIX}_PASSWORD,
// {PREFIX}_RATE_LIMIT, {PREFIX}_TIMEOUT and {PREFIX}_USER_AGENT. An empty prefix uses WPAPI.
func OptionsFromEnv(prefix string) (*Options, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	var options Options

	if err := envconfig.Process(prefix, &options); err != nil {
		return nil, err
	}

	return &options, nil
}
