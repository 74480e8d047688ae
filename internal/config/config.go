package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Azure struct {
		TenantId             string `json:"tenantId"`
		ClientId             string `json:"clientId"`
		ClientSecret         string `json:"clientSecret"`
		ServicePrincipalName string `json:"servicePrincipalName"`
	} `json:"azure"`
}

const APP_CONF_PREFIX = "ASYNC"

func LoadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process(APP_CONF_PREFIX, &conf)

	return conf, err
}
