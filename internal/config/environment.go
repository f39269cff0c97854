package config

import (
	"strings"
)

// Environment is the deployment stage read from app.env.
type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[Environment]string{
	LOCAL_ENV: "local",
	DEV_ENV:   "dev",
	UAT_ENV:   "uat",
	PROD_ENV:  "prod",
}

// StringToEnvironment is case-insensitive; anything unknown is UNDEFINED_ENV.
func StringToEnvironment(s string) Environment {
	s = strings.ToLower(strings.TrimSpace(s))
	for env, name := range environmentNames {
		if name == s {
			return env
		}
	}
	return UNDEFINED_ENV
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "UNDEFINED"
}

func (e Environment) IsProduction() bool {
	return e == PROD_ENV
}

// IsLocal reports a developer machine. Unknown values count as local.
func (e Environment) IsLocal() bool {
	return e == LOCAL_ENV || e == UNDEFINED_ENV
}

// Environment parses App.Env.
func (a App) Environment() Environment {
	return StringToEnvironment(a.Env)
}
