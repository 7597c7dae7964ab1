package tensor

import (
	"testing"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{36, 3}, 108},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{36, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{36, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeEqual(t *testing.T) {
	a := Shape{36, 3}
	if !a.Equal(Shape{36, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if a.Equal(Shape{3, 36}) {
		t.Error("different shapes reported equal")
	}
	if a.Equal(Shape{36}) {
		t.Error("different ranks reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	a := Shape{36, 3}
	b := a.Clone()
	b[0] = 1
	if a[0] != 36 {
		t.Error("Clone shares underlying storage")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{36, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{5}, []int{1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Fatalf("Shape%v strides %v, want %v", tt.shape, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Shape%v strides %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{Shape{36, 3}, Shape{36, 3}, Shape{36, 3}, false},
		{Shape{36, 3}, Shape{3}, Shape{36, 3}, false},
		{Shape{36, 1}, Shape{1, 3}, Shape{36, 3}, false},
		{Shape{36, 3}, Shape{1}, Shape{36, 3}, false},
		{Shape{36, 3}, Shape{36, 4}, nil, true},
	}

	for _, tt := range tests {
		got, _, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v): expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRawTensorRefCounting(t *testing.T) {
	raw, err := NewRaw(Shape{4, 4}, Float64, CPU)
	if err != nil {
		t.Fatal(err)
	}
	if !raw.IsUnique() {
		t.Error("fresh tensor should own its buffer")
	}

	clone := raw.Clone()
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("clone should share the buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("release should drop the shared reference")
	}

	deep := raw.DeepClone()
	if !deep.IsUnique() {
		t.Error("deep clone should own its buffer")
	}
	deep.AsFloat64()[0] = 42
	if raw.AsFloat64()[0] == 42 {
		t.Error("deep clone shares storage with the source")
	}
}
