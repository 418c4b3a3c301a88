package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

func TestEncodeKeyData_Layout(t *testing.T) {
	d := entity.KeyData{
		Timestamp: 1234,
		Type:      entity.KeyRepeat,
		Physical:  0x00070004,
		Logical:   0x61,
		Character: "é",
		Device:    entity.DeviceGamepad,
	}

	buf := EncodeKeyData(d)

	require.Len(t, buf, HeaderSize+2)
	field := func(i int) uint64 { return binary.LittleEndian.Uint64(buf[i*8:]) }
	assert.Equal(t, uint64(2), field(0))
	assert.Equal(t, uint64(1234), field(1))
	assert.Equal(t, uint64(2), field(2))
	assert.Equal(t, uint64(0x00070004), field(3))
	assert.Equal(t, uint64(0x61), field(4))
	assert.Equal(t, uint64(0), field(5))
	assert.Equal(t, uint64(2), field(6))
	assert.Equal(t, "é", string(buf[HeaderSize:]))
}

func TestDecodeKeyData_RoundTrip(t *testing.T) {
	d := entity.KeyData{
		Timestamp:   42,
		Type:        entity.KeyUp,
		Physical:    keymap.PhysicalShiftLeft,
		Logical:     keymap.LogicalShiftLeft,
		Synthesized: true,
		Device:      entity.DeviceKeyboard,
	}

	got, err := DecodeKeyData(EncodeKeyData(d))

	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDecodeKeyData_Errors(t *testing.T) {
	valid := EncodeKeyData(entity.KeyData{Character: "a"})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortPacket},
		{"truncated header", valid[:HeaderSize-1], ErrShortPacket},
		{"missing character", valid[:HeaderSize], ErrCharSizeMismatch},
		{"trailing bytes", append(append([]byte{}, valid...), 'x'), ErrCharSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeKeyData(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
