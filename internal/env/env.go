// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
)

type Env interface {
	GetConfigFile() string
	GetTarget() string
}

type Environment struct {
}

func NewEnv() *Environment {
	return &Environment{}
}

// GetConfigFile returns the settings file to use when --config is not given.
func (e *Environment) GetConfigFile() string {
	return os.Getenv("CSVAPPEND_CONFIG")
}

func (e *Environment) GetTarget() string {
	return os.Getenv("CSVAPPEND_TARGET")
}
