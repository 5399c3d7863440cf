package kepco

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
)

func TestDefaultTariff(t *testing.T) {
	tariff, err := DefaultTariff()
	require.NoError(t, err)

	rate, ok := tariff.Lookup(kepco.VoltageLow, kepco.SupplyOverhead)
	require.True(t, ok)
	assert.Equal(t, int64(306_000), rate.BaseCharge)
	assert.Equal(t, int64(121_000), rate.PerKW)

	_, ok = tariff.Lookup("초고압", kepco.SupplyOverhead)
	assert.False(t, ok)
}

func TestParseTariff(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseTariff([]byte("rates: [1, 2"))
		assert.ErrorIs(t, err, kepco.ErrInvalidTariff)
	})

	t.Run("missing combination", func(t *testing.T) {
		_, err := ParseTariff([]byte(`
rates:
  저압:
    공중: {base_charge: 306000, per_kw: 121000}
`))
		assert.ErrorIs(t, err, kepco.ErrInvalidTariff)
	})

	t.Run("low voltage needs base charge", func(t *testing.T) {
		data := []byte(`
rates:
  저압:
    공중: {per_kw: 121000}
    지중: {base_charge: 1, per_kw: 1}
  고압:
    공중: {per_kw: 1}
    지중: {per_kw: 1}
  특별고압:
    공중: {per_kw: 1}
    지중: {per_kw: 1}
`)
		_, err := ParseTariff(data)
		assert.ErrorIs(t, err, kepco.ErrInvalidTariff)
	})

	t.Run("per kw above cap", func(t *testing.T) {
		data := []byte(`
rates:
  저압:
    공중: {base_charge: 306000, per_kw: 121000}
    지중: {base_charge: 1, per_kw: 1}
  고압:
    공중: {per_kw: 9000000000000000000}
    지중: {per_kw: 1}
  특별고압:
    공중: {per_kw: 1}
    지중: {per_kw: 1}
`)
		_, err := ParseTariff(data)
		assert.ErrorIs(t, err, kepco.ErrInvalidTariff)
	})
}

func TestLoadTariff(t *testing.T) {
	t.Run("empty path uses embedded table", func(t *testing.T) {
		tariff, err := LoadTariff("")
		require.NoError(t, err)
		assert.Equal(t, "2024-default", tariff.Version)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tariffs.yaml")
		require.NoError(t, os.WriteFile(path, defaultTariffYAML, 0o644))

		tariff, err := LoadTariff(path)
		require.NoError(t, err)
		assert.Len(t, tariff.Rates, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTariff(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
