package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dslerrors "github.com/sourceplane/litedsl/internal/errors"
)

type platform string

const (
	platformAny     platform = "Any"
	platformLinux   platform = "Linux"
	platformWindows platform = "Windows"
)

func TestSpec_KeyDefaultsToName(t *testing.T) {
	f := NewString("branchFilter", "")
	assert.Equal(t, "branchFilter", f.Key())
	assert.False(t, f.Mandatory())

	g := NewString("scriptContent", "script.content", Mandatory(), Doc("script body"))
	assert.Equal(t, "script.content", g.Key())
	assert.True(t, g.Mandatory())
	assert.Equal(t, "script body", g.Doc())
}

func TestString(t *testing.T) {
	f := NewString("workingDir", "teamcity.build.workingDir")
	b := NewBag()

	_, ok := f.Get(b)
	assert.False(t, ok, "unset field reads as absent")
	assert.False(t, f.IsSet(b))

	f.Set(b, "")
	v, ok := f.Get(b)
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.NoError(t, f.Check(b))
}

func TestBool(t *testing.T) {
	tests := []struct {
		name      string
		field     *Bool
		raw       string
		want      bool
		wantOK    bool
		wantCheck bool
	}{
		{"default true", NewBool("reverse", ""), "true", true, true, false},
		{"default false", NewBool("reverse", ""), "false", false, true, false},
		{"default garbage", NewBool("reverse", ""), "yes", false, false, true},
		{"empty false", NewBoolEncoded("dockerPull", "plugin.docker.pull.enabled", "true", ""), "", false, true, false},
		{"empty true", NewBoolEncoded("reportOnlyFirstMatch", "", "", "false"), "", true, true, false},
		{"empty true false", NewBoolEncoded("reportOnlyFirstMatch", "", "", "false"), "false", false, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBag()
			b.Set(tc.field.Key(), tc.raw)

			got, ok := tc.field.Get(b)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantCheck {
				assert.ErrorIs(t, tc.field.Check(b), dslerrors.ErrInvalidValue)
			} else {
				assert.NoError(t, tc.field.Check(b))
			}
		})
	}
}

func TestBool_SetUsesEncodings(t *testing.T) {
	f := NewBoolEncoded("successfulOnly", "afterSuccessfulBuildOnly", "true", "")
	b := NewBag()

	f.Set(b, false)
	raw, ok := b.Get("afterSuccessfulBuildOnly")
	require.True(t, ok)
	assert.Empty(t, raw)

	f.Set(b, true)
	raw, _ = b.Get("afterSuccessfulBuildOnly")
	assert.Equal(t, "true", raw)

	_, ok = f.Get(NewBag())
	assert.False(t, ok)
}

func TestInt(t *testing.T) {
	f := NewInt("attempts", "retryAttempts")
	b := NewBag()

	_, ok := f.Get(b)
	assert.False(t, ok)
	assert.NoError(t, f.Check(b))

	f.Set(b, 3)
	n, ok := f.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	b.Set("retryAttempts", "three")
	_, ok = f.Get(b)
	assert.False(t, ok)
	assert.False(t, f.IsSet(b))
	assert.ErrorIs(t, f.Check(b), dslerrors.ErrInvalidValue)
}

func TestEnum_RoundTripWithMapping(t *testing.T) {
	values := []platform{platformAny, platformLinux, platformWindows}
	f := NewEnum("dockerImagePlatform", "plugin.docker.imagePlatform", values, map[platform]string{
		platformAny:     "",
		platformLinux:   "linux",
		platformWindows: "windows",
	})

	for _, v := range values {
		b := NewBag()
		f.Set(b, v)
		got, ok := f.Get(b)
		require.True(t, ok, "value %s", v)
		assert.Equal(t, v, got)

		enc, _ := f.Encode(v)
		dec, err := f.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, v, dec)
	}

	raw := NewBag()
	f.Set(raw, platformLinux)
	stored, _ := raw.Get("plugin.docker.imagePlatform")
	assert.Equal(t, "linux", stored)

	assert.Equal(t, []EnumValue{
		{Name: "Any", Encoded: ""},
		{Name: "Linux", Encoded: "linux"},
		{Name: "Windows", Encoded: "windows"},
	}, f.Values())
}

func TestEnum_WithoutMappingUsesNames(t *testing.T) {
	f := NewEnum("filterAuthorRole", "", []platform{platformLinux, platformWindows}, nil)
	b := NewBag()
	f.Set(b, platformWindows)

	raw, _ := b.Get("filterAuthorRole")
	assert.Equal(t, "Windows", raw)
}

func TestEnum_UnknownEncoding(t *testing.T) {
	f := NewEnum("conditionType", "", []platform{platformLinux}, map[platform]string{platformLinux: "linux"})
	b := NewBag()
	b.Set("conditionType", "solaris")

	_, ok := f.Get(b)
	assert.False(t, ok)
	assert.False(t, f.IsSet(b))
	assert.ErrorIs(t, f.Check(b), dslerrors.ErrUnknownEnumValue)

	_, err := f.Decode("solaris")
	assert.ErrorIs(t, err, dslerrors.ErrUnknownEnumValue)
}

func TestEnum_DuplicateEncodingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewEnum("x", "", []platform{platformLinux, platformWindows}, map[platform]string{
			platformLinux:   "os",
			platformWindows: "os",
		})
	})
}
