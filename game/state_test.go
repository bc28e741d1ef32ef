package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Flips(t *testing.T) {
	tests := []struct {
		dir        Direction
		vertical   Direction
		horizontal Direction
	}{
		{TopLeft, BottomLeft, TopRight},
		{TopRight, BottomRight, TopLeft},
		{BottomLeft, TopLeft, BottomRight},
		{BottomRight, TopRight, BottomLeft},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.vertical, tt.dir.FlipVertical())
			assert.Equal(t, tt.horizontal, tt.dir.FlipHorizontal())
			assert.Equal(t, tt.dir, tt.dir.FlipVertical().FlipVertical())
			assert.Equal(t, tt.dir, tt.dir.FlipHorizontal().FlipHorizontal())

			// A vertical flip keeps the horizontal sign and vice versa.
			dx, dy := tt.dir.Signs()
			vdx, vdy := tt.dir.FlipVertical().Signs()
			hdx, hdy := tt.dir.FlipHorizontal().Signs()
			assert.Equal(t, dx, vdx)
			assert.Equal(t, -dy, vdy)
			assert.Equal(t, -dx, hdx)
			assert.Equal(t, dy, hdy)
		})
	}
}

func TestDirection_Text(t *testing.T) {
	for _, d := range []Direction{TopLeft, TopRight, BottomLeft, BottomRight} {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var back Direction
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, d, back)
	}

	_, err := Direction(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Direction(9)", Direction(9).String())

	var d Direction
	assert.Error(t, d.UnmarshalText([]byte("Sideways")))
}

func TestPlayState(t *testing.T) {
	s := Stopped()
	_, ok := s.Direction()
	assert.False(t, ok, "direction is not available while stopped")
	assert.Equal(t, "Stopped", s.String())

	assert.True(t, s.Start())
	assert.Equal(t, Running(TopLeft), s)

	s = Running(BottomRight)
	assert.False(t, s.Start(), "start leaves a running state alone")
	dir, ok := s.Direction()
	assert.True(t, ok)
	assert.Equal(t, BottomRight, dir)
	assert.Equal(t, "Running(BottomRight)", s.String())
}

func TestPlayState_JSON(t *testing.T) {
	data, err := json.Marshal(Stopped())
	require.NoError(t, err)
	assert.JSONEq(t, `{"running":false}`, string(data))

	data, err = json.Marshal(Running(BottomLeft))
	require.NoError(t, err)
	assert.JSONEq(t, `{"running":true,"direction":"BottomLeft"}`, string(data))

	var s PlayState
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, Running(BottomLeft), s)

	require.NoError(t, json.Unmarshal([]byte(`{"running":false,"direction":"TopRight"}`), &s))
	assert.Equal(t, Stopped(), s)
}

func TestKeySet(t *testing.T) {
	keys := KeySet{}
	keys.Set(KeyW, true)
	assert.True(t, keys.IsKeyDown(KeyW))
	assert.False(t, keys.IsKeyDown(KeyS))

	keys.Set(KeyW, false)
	assert.False(t, keys.IsKeyDown(KeyW))
	assert.Empty(t, keys)

	assert.True(t, Known(KeyDown))
	assert.False(t, Known(Key(65)))
}

func TestScore_Add(t *testing.T) {
	var s Score
	s.Add(Blue)
	s.Add(Red)
	s.Add(Red)
	s.Add(NoTeam)
	assert.Equal(t, Score{Blue: 1, Red: 2}, s)
}
