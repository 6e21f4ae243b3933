package versions

import (
	"testing"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Ordering
	}{
		{"equal", "1.2.3", "1.2.3", Equal},
		{"less patch", "1.2.3", "1.2.4", Less},
		{"greater minor", "1.10.0", "1.9.9", Greater},
		{"numeric not lexical", "2.10", "2.9", Greater},
		{"missing trailing segments are zero", "1.2", "1.2.0", Equal},
		{"missing trailing segments less", "1.2", "1.2.1", Less},
		{"v prefix", "v2.1.0", "2.1.0", Equal},
		{"go prefix", "go1.24.1", "1.24.1", Equal},
		{"both prefixed", "v24.1.0", "v20.1.0", Greater},
		{"prerelease suffix ignored", "1.2.3-rc1", "1.2.3", Equal},
		{"build metadata ignored", "2.0.0+build.7", "2.0.0", Equal},
		{"glued suffix ignored", "go1.22rc2", "1.22", Equal},
		{"major dominates", "10.0", "9.99.99", Greater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			reverse, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, reverse, "comparison must be antisymmetric")
		})
	}
}

func TestCompare_Malformed(t *testing.T) {
	for _, v := range []string{"", "v", "latest", "1..2", "1.2.", "1.2.x", ".1"} {
		t.Run(v, func(t *testing.T) {
			_, err := Compare(v, "1.0.0")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedVersion))

			_, err = Compare("1.0.0", v)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedVersion))
		})
	}
}

func TestCompare_Transitive(t *testing.T) {
	ordered := []string{"0.9", "v1.0.0", "1.0.1", "go1.2", "1.10", "2", "v2.0.1-beta", "10.0.0"}

	for i := range ordered {
		for j := range ordered {
			for k := range ordered {
				ab, err := Compare(ordered[i], ordered[j])
				require.NoError(t, err)
				bc, err := Compare(ordered[j], ordered[k])
				require.NoError(t, err)
				if ab == Less && bc == Less {
					ac, err := Compare(ordered[i], ordered[k])
					require.NoError(t, err)
					assert.Equal(t, Less, ac, "%s < %s < %s", ordered[i], ordered[j], ordered[k])
				}
			}
		}
	}
}

func TestAtLeast(t *testing.T) {
	ok, err := AtLeast("v24.1.0", "v24.1.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AtLeast("v20.1.0", "v24.1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = AtLeast("abc", "1.0")
	assert.Error(t, err)
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "1.2.3", StripPrefix("v1.2.3"))
	assert.Equal(t, "1.24.1", StripPrefix("go1.24.1"))
	assert.Equal(t, "1.0", StripPrefix("1.0"))
	assert.Equal(t, "", StripPrefix("latest"))
}
