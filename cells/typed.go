package cells

// IntCell wraps Cell[int] with a concrete accessor surface.
type IntCell struct{ *Cell[int] }

// NewIntCell returns an IntCell bound to the constant initial.
func NewIntCell(initial int) *IntCell {
	return &IntCell{New(initial)}
}

// ComputedInt returns an IntCell bound to fn.
func ComputedInt(fn func(*Context) int) *IntCell {
	return &IntCell{Computed(fn)}
}

// StatefulInt returns an IntCell bound to the stateful fn.
func StatefulInt(initial int, fn func(*Context, int) int) *IntCell {
	return &IntCell{Stateful(initial, fn)}
}

// Inc adds one to the current value.
func (c *IntCell) Inc() {
	c.SetValue(c.Value() + 1)
}

// Dec subtracts one from the current value.
func (c *IntCell) Dec() {
	c.SetValue(c.Value() - 1)
}

// Add adds delta to the current value.
func (c *IntCell) Add(delta int) {
	c.SetValue(c.Value() + delta)
}

// Sub subtracts delta from the current value.
func (c *IntCell) Sub(delta int) {
	c.SetValue(c.Value() - delta)
}

// Int64Cell wraps Cell[int64] with a concrete accessor surface.
type Int64Cell struct{ *Cell[int64] }

// NewInt64Cell returns an Int64Cell bound to the constant initial.
func NewInt64Cell(initial int64) *Int64Cell {
	return &Int64Cell{New(initial)}
}

// ComputedInt64 returns an Int64Cell bound to fn.
func ComputedInt64(fn func(*Context) int64) *Int64Cell {
	return &Int64Cell{Computed(fn)}
}

// StatefulInt64 returns an Int64Cell bound to the stateful fn.
func StatefulInt64(initial int64, fn func(*Context, int64) int64) *Int64Cell {
	return &Int64Cell{Stateful(initial, fn)}
}

// Inc adds one to the current value.
func (c *Int64Cell) Inc() {
	c.SetValue(c.Value() + 1)
}

// Dec subtracts one from the current value.
func (c *Int64Cell) Dec() {
	c.SetValue(c.Value() - 1)
}

// Add adds delta to the current value.
func (c *Int64Cell) Add(delta int64) {
	c.SetValue(c.Value() + delta)
}

// Sub subtracts delta from the current value.
func (c *Int64Cell) Sub(delta int64) {
	c.SetValue(c.Value() - delta)
}

// Float32Cell wraps Cell[float32] with a concrete accessor surface.
type Float32Cell struct{ *Cell[float32] }

// NewFloat32Cell returns a Float32Cell bound to the constant initial.
func NewFloat32Cell(initial float32) *Float32Cell {
	return &Float32Cell{New(initial)}
}

// ComputedFloat32 returns a Float32Cell bound to fn.
func ComputedFloat32(fn func(*Context) float32) *Float32Cell {
	return &Float32Cell{Computed(fn)}
}

// StatefulFloat32 returns a Float32Cell bound to the stateful fn.
func StatefulFloat32(initial float32, fn func(*Context, float32) float32) *Float32Cell {
	return &Float32Cell{Stateful(initial, fn)}
}

// Add adds delta to the current value.
func (c *Float32Cell) Add(delta float32) {
	c.SetValue(c.Value() + delta)
}

// Sub subtracts delta from the current value.
func (c *Float32Cell) Sub(delta float32) {
	c.SetValue(c.Value() - delta)
}

// Scale multiplies the current value by factor.
func (c *Float32Cell) Scale(factor float32) {
	c.SetValue(c.Value() * factor)
}

// Float64Cell wraps Cell[float64] with a concrete accessor surface.
type Float64Cell struct{ *Cell[float64] }

// NewFloat64Cell returns a Float64Cell bound to the constant initial.
func NewFloat64Cell(initial float64) *Float64Cell {
	return &Float64Cell{New(initial)}
}

// ComputedFloat64 returns a Float64Cell bound to fn.
func ComputedFloat64(fn func(*Context) float64) *Float64Cell {
	return &Float64Cell{Computed(fn)}
}

// StatefulFloat64 returns a Float64Cell bound to the stateful fn.
func StatefulFloat64(initial float64, fn func(*Context, float64) float64) *Float64Cell {
	return &Float64Cell{Stateful(initial, fn)}
}

// Add adds delta to the current value.
func (c *Float64Cell) Add(delta float64) {
	c.SetValue(c.Value() + delta)
}

// Sub subtracts delta from the current value.
func (c *Float64Cell) Sub(delta float64) {
	c.SetValue(c.Value() - delta)
}

// Scale multiplies the current value by factor.
func (c *Float64Cell) Scale(factor float64) {
	c.SetValue(c.Value() * factor)
}

// BoolCell wraps Cell[bool] with a concrete accessor surface.
type BoolCell struct{ *Cell[bool] }

// NewBoolCell returns a BoolCell bound to the constant initial.
func NewBoolCell(initial bool) *BoolCell {
	return &BoolCell{New(initial)}
}

// ComputedBool returns a BoolCell bound to fn.
func ComputedBool(fn func(*Context) bool) *BoolCell {
	return &BoolCell{Computed(fn)}
}

// StatefulBool returns a BoolCell bound to the stateful fn.
func StatefulBool(initial bool, fn func(*Context, bool) bool) *BoolCell {
	return &BoolCell{Stateful(initial, fn)}
}

// Toggle flips the current value.
func (c *BoolCell) Toggle() {
	c.SetValue(!c.Value())
}

// SetTrue sets the value to true.
func (c *BoolCell) SetTrue() {
	c.SetValue(true)
}

// SetFalse sets the value to false.
func (c *BoolCell) SetFalse() {
	c.SetValue(false)
}

// RuneCell wraps Cell[rune] with a concrete accessor surface.
type RuneCell struct{ *Cell[rune] }

// NewRuneCell returns a RuneCell bound to the constant initial.
func NewRuneCell(initial rune) *RuneCell {
	return &RuneCell{New(initial)}
}

// ComputedRune returns a RuneCell bound to fn.
func ComputedRune(fn func(*Context) rune) *RuneCell {
	return &RuneCell{Computed(fn)}
}

// StatefulRune returns a RuneCell bound to the stateful fn.
func StatefulRune(initial rune, fn func(*Context, rune) rune) *RuneCell {
	return &RuneCell{Stateful(initial, fn)}
}

// StringCell wraps Cell[string] with a concrete accessor surface.
type StringCell struct{ *Cell[string] }

// NewStringCell returns a StringCell bound to the constant initial.
func NewStringCell(initial string) *StringCell {
	return &StringCell{New(initial)}
}

// ComputedString returns a StringCell bound to fn.
func ComputedString(fn func(*Context) string) *StringCell {
	return &StringCell{Computed(fn)}
}

// StatefulString returns a StringCell bound to the stateful fn.
func StatefulString(initial string, fn func(*Context, string) string) *StringCell {
	return &StringCell{Stateful(initial, fn)}
}

// Append appends s to the current value.
func (c *StringCell) Append(s string) {
	c.SetValue(c.Value() + s)
}

// Clear sets the value to the empty string.
func (c *StringCell) Clear() {
	c.SetValue("")
}
