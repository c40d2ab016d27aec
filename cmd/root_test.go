// Copyright 2024 Logdeck Technologies <dev@logdeck.io>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/logdeck/logdeck-cli/helper"
)

func TestConfigDefaults(t *testing.T) {
	viper.SetFs(afero.NewMemMapFs())
	initConfig()

	assert.Equal(t, helper.DefaultBaseURL, helper.BaseURL())
	assert.Equal(t, helper.DefaultTimeout, helper.Timeout())
}

func TestConfigOverrides(t *testing.T) {
	viper.SetFs(afero.NewMemMapFs())
	initConfig()

	viper.Set("url", "http://dashboard.internal/api/v1")
	viper.Set("timeout", 5)
	t.Cleanup(func() {
		viper.Set("url", "")
		viper.Set("timeout", 0)
	})

	assert.Equal(t, "http://dashboard.internal/api/v1", helper.BaseURL())
	assert.Equal(t, 5*time.Second, helper.Timeout())
}
