// Package circuit expresses modulo-2^64 addition as a gnark circuit, so
// the wrapping policy of the adder package can be established inside a
// proof system.
package circuit

import (
	"github.com/consensys/gnark/frontend"
)

// WrapAdd constrains and returns (left + right) mod 2^64. Both operands
// are range-checked to 64 bits; the raw sum is decomposed into 65 bits and
// the low 64 are repacked. The scalar field must be wider than 2^65.
func WrapAdd(api frontend.API, left, right frontend.Variable) frontend.Variable {
	api.ToBinary(left, 64)
	api.ToBinary(right, 64)

	full := api.Add(left, right)
	bits := api.ToBinary(full, 65)
	return api.FromBinary(bits[:64]...)
}

// Adder64 proves Sum == (Left + Right) mod 2^64 over 64-bit operands.
type Adder64 struct {
	Left  frontend.Variable `gnark:",public"`
	Right frontend.Variable `gnark:",public"`
	Sum   frontend.Variable `gnark:",public"`
}

func (circuit *Adder64) Define(api frontend.API) error {
	api.AssertIsEqual(WrapAdd(api, circuit.Left, circuit.Right), circuit.Sum)
	return nil
}
