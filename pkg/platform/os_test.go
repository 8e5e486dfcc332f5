// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentMatchesRuntimeGOOS(t *testing.T) {
	assert.Equal(t, runtime.GOOS, Current())
}
