package hypermath

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML forms. Vectors and quaternions encode as flow sequences
// ("[1, 2]"); on decode a block or flow sequence, a mapping with
// component keys ("{x: 1, y: 2}"), or the canonical string form is
// accepted. Color encodes as its hex string through MarshalText, which
// yaml.v3 honors when encoding; the decode side needs the explicit
// UnmarshalYAML below because yaml.v3 ignores TextUnmarshaler.

func flowSequence(values any) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(values); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

func yamlError(node *yaml.Node, err error) error {
	return fmt.Errorf("%w: line %d: %v", ErrInvalidFormat, node.Line, err)
}

func yamlKindError(node *yaml.Node) error {
	return fmt.Errorf("%w: line %d: cannot decode %v node into a vector",
		ErrInvalidFormat, node.Line, node.Tag)
}

// MarshalYAML encodes the vector as the flow sequence [x, y].
func (v Vector2) MarshalYAML() (any, error) {
	return flowSequence([2]float32{v.X, v.Y})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y keys, or the
// canonical string form.
func (v *Vector2) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [2]float32
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2{X: arr[0], Y: arr[1]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y float32 }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the vector as the flow sequence [x, y].
func (v Vector2d) MarshalYAML() (any, error) {
	return flowSequence([2]float64{v.X, v.Y})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y keys, or the
// canonical string form.
func (v *Vector2d) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [2]float64
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2d{X: arr[0], Y: arr[1]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y float64 }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2d(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the vector as the flow sequence [x, y].
func (v Vector2i) MarshalYAML() (any, error) {
	return flowSequence([2]int{v.X, v.Y})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y keys, or the
// canonical string form.
func (v *Vector2i) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [2]int
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2i{X: arr[0], Y: arr[1]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y int }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2i(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the mask as the flow sequence [x, y].
func (v Vector2b) MarshalYAML() (any, error) {
	return flowSequence([2]bool{v.X, v.Y})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y keys, or the
// canonical string form.
func (v *Vector2b) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [2]bool
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2b{X: arr[0], Y: arr[1]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y bool }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector2b(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the vector as the flow sequence [x, y, z].
func (v Vector3) MarshalYAML() (any, error) {
	return flowSequence([3]float32{v.X, v.Y, v.Z})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y/z keys, or the
// canonical string form.
func (v *Vector3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [3]float32
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector3{X: arr[0], Y: arr[1], Z: arr[2]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y, Z float32 }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector3(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the vector as the flow sequence [x, y, z].
func (v Vector3i) MarshalYAML() (any, error) {
	return flowSequence([3]int{v.X, v.Y, v.Z})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y/z keys, or the
// canonical string form.
func (v *Vector3i) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [3]int
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector3i{X: arr[0], Y: arr[1], Z: arr[2]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y, Z int }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector3i(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// MarshalYAML encodes the vector as the flow sequence [x, y, z, w].
func (v Vector4) MarshalYAML() (any, error) {
	return flowSequence([4]float32{v.X, v.Y, v.Z, v.W})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y/z/w keys, or the
// canonical string form.
func (v *Vector4) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [4]float32
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*v = Vector4{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y, Z, W float32 }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*v = Vector4(aux)
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}

// UnmarshalYAML decodes a hex color scalar; see ParseColorHex.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: cannot decode %v node into a color",
			ErrInvalidFormat, node.Line, node.Tag)
	}
	return c.UnmarshalText([]byte(node.Value))
}

// MarshalYAML encodes the quaternion as the flow sequence [x, y, z, w].
func (q Quaternion) MarshalYAML() (any, error) {
	return flowSequence([4]float32{q.X, q.Y, q.Z, q.W})
}

// UnmarshalYAML decodes a sequence, a mapping with x/y/z/w keys, or the
// canonical string form.
func (q *Quaternion) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr [4]float32
		if err := node.Decode(&arr); err != nil {
			return yamlError(node, err)
		}
		*q = Quaternion{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
		return nil
	case yaml.MappingNode:
		var aux struct{ X, Y, Z, W float32 }
		if err := node.Decode(&aux); err != nil {
			return yamlError(node, err)
		}
		*q = Quaternion(aux)
		return nil
	case yaml.ScalarNode:
		return q.UnmarshalText([]byte(node.Value))
	}
	return yamlKindError(node)
}
