package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

func TestSniffFormat(t *testing.T) {
	assert.Equal(t, entity.SourceTypeXLSX, SniffFormat([]byte("PK\x03\x04rest")))
	assert.Equal(t, entity.SourceTypePDF, SniffFormat([]byte("%PDF-1.7")))
	assert.Equal(t, entity.SourceTypeCSV, SniffFormat([]byte("交易时间,金额")))
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewDefaultRegistry(shanghai)
	alipay := []byte(alipayExport)
	wechat := xlsxBytes(t, wechatRows())
	icbc := xlsxBytes(t, icbcRows())

	t.Run("Declared source", func(t *testing.T) {
		p, err := registry.Resolve(alipay, entity.SourceAlipay, entity.SourceTypeCSV)
		require.NoError(t, err)
		assert.Equal(t, entity.SourceAlipay, p.Source())

		p, err = registry.Resolve(icbc, " ICBC ", "")
		require.NoError(t, err)
		assert.Equal(t, entity.SourceICBC, p.Source())
	})

	t.Run("Detected source", func(t *testing.T) {
		p, err := registry.Resolve(alipay, "", "")
		require.NoError(t, err)
		assert.Equal(t, entity.SourceAlipay, p.Source())

		p, err = registry.Resolve(wechat, "", "")
		require.NoError(t, err)
		assert.Equal(t, entity.SourceWechat, p.Source())

		p, err = registry.Resolve(icbc, "", entity.SourceTypeXLSX)
		require.NoError(t, err)
		assert.Equal(t, entity.SourceICBC, p.Source())
	})

	t.Run("Declared format disagrees with content", func(t *testing.T) {
		_, err := registry.Resolve(alipay, "", entity.SourceTypeXLSX)
		assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
	})

	t.Run("Declared source disagrees with content", func(t *testing.T) {
		_, err := registry.Resolve(alipay, entity.SourceWechat, "")
		assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, err := registry.Resolve(alipay, "paypal", "")
		assert.ErrorIs(t, err, errs.ErrUnsupportedSource)

		_, err = registry.Resolve([]byte("date,amount\n"), "", "")
		assert.ErrorIs(t, err, errs.ErrUnsupportedSource)

		_, err = registry.Resolve([]byte("%PDF-1.4 garbage"), "", "")
		assert.ErrorIs(t, err, errs.ErrUnsupportedSource)
	})
}
