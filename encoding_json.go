package hypermath

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON forms. Vectors and quaternions encode as plain arrays
// ("[1, 2]"), the compact convention graphics asset formats use; on
// decode the canonical string form ("\"1, 2\"") is accepted as well.
// Color uses its hex text form through the encoding.Text interfaces.
// Matrices have no flat JSON form and encode through their row fields,
// which round-trip as nested arrays.

func unmarshalComponents(data []byte, dst any, want int) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(raw) != want {
		return fmt.Errorf("%w: got %d elements, want %d", ErrInvalidFormat, len(raw), want)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func isJSONString(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func unmarshalJSONString(data []byte, unmarshalText func([]byte) error) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return unmarshalText([]byte(s))
}

// MarshalJSON encodes the vector as the array [x, y].
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32{v.X, v.Y})
}

// UnmarshalJSON decodes either the array [x, y] or the canonical string
// form.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [2]float32
	if err := unmarshalComponents(data, &arr, 2); err != nil {
		return err
	}
	*v = Vector2{X: arr[0], Y: arr[1]}
	return nil
}

// MarshalJSON encodes the vector as the array [x, y].
func (v Vector2d) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON decodes either the array [x, y] or the canonical string
// form.
func (v *Vector2d) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [2]float64
	if err := unmarshalComponents(data, &arr, 2); err != nil {
		return err
	}
	*v = Vector2d{X: arr[0], Y: arr[1]}
	return nil
}

// MarshalJSON encodes the vector as the array [x, y].
func (v Vector2i) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{v.X, v.Y})
}

// UnmarshalJSON decodes either the array [x, y] or the canonical string
// form.
func (v *Vector2i) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [2]int
	if err := unmarshalComponents(data, &arr, 2); err != nil {
		return err
	}
	*v = Vector2i{X: arr[0], Y: arr[1]}
	return nil
}

// MarshalJSON encodes the mask as the array [x, y].
func (v Vector2b) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]bool{v.X, v.Y})
}

// UnmarshalJSON decodes either the array [x, y] or the canonical string
// form.
func (v *Vector2b) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [2]bool
	if err := unmarshalComponents(data, &arr, 2); err != nil {
		return err
	}
	*v = Vector2b{X: arr[0], Y: arr[1]}
	return nil
}

// MarshalJSON encodes the vector as the array [x, y, z].
func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes either the array [x, y, z] or the canonical
// string form.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [3]float32
	if err := unmarshalComponents(data, &arr, 3); err != nil {
		return err
	}
	*v = Vector3{X: arr[0], Y: arr[1], Z: arr[2]}
	return nil
}

// MarshalJSON encodes the vector as the array [x, y, z].
func (v Vector3i) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes either the array [x, y, z] or the canonical
// string form.
func (v *Vector3i) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [3]int
	if err := unmarshalComponents(data, &arr, 3); err != nil {
		return err
	}
	*v = Vector3i{X: arr[0], Y: arr[1], Z: arr[2]}
	return nil
}

// MarshalJSON encodes the vector as the array [x, y, z, w].
func (v Vector4) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{v.X, v.Y, v.Z, v.W})
}

// UnmarshalJSON decodes either the array [x, y, z, w] or the canonical
// string form.
func (v *Vector4) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, v.UnmarshalText)
	}
	var arr [4]float32
	if err := unmarshalComponents(data, &arr, 4); err != nil {
		return err
	}
	*v = Vector4{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
	return nil
}

// MarshalJSON encodes the quaternion as the array [x, y, z, w].
func (q Quaternion) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{q.X, q.Y, q.Z, q.W})
}

// UnmarshalJSON decodes either the array [x, y, z, w] or the canonical
// string form.
func (q *Quaternion) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return unmarshalJSONString(data, q.UnmarshalText)
	}
	var arr [4]float32
	if err := unmarshalComponents(data, &arr, 4); err != nil {
		return err
	}
	*q = Quaternion{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
	return nil
}
