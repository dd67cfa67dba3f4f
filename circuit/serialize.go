package circuit

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// circuitForSerialization drops the builder state and keeps registers by value.
type circuitForSerialization struct {
	Name         string
	Registers    []Register
	Instructions []Instruction
	NbQubits     int
	NbClbits     int
}

func (c *Circuit) forSerialization() *circuitForSerialization {
	cfs := &circuitForSerialization{
		Name:         c.Name,
		Registers:    make([]Register, len(c.Registers)),
		Instructions: c.Instructions,
		NbQubits:     c.NbQubits,
		NbClbits:     c.NbClbits,
	}
	for i, r := range c.Registers {
		cfs.Registers[i] = *r
	}
	return cfs
}

func (cfs *circuitForSerialization) circuit() (*Circuit, error) {
	c := &Circuit{
		Name:         cfs.Name,
		Registers:    make([]*Register, len(cfs.Registers)),
		Instructions: cfs.Instructions,
		NbQubits:     cfs.NbQubits,
		NbClbits:     cfs.NbClbits,
	}
	for i := range cfs.Registers {
		r := cfs.Registers[i]
		c.Registers[i] = &r
	}
	c.scope = &c.Instructions
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("decoded circuit is invalid: %v", err)
	}
	return c, nil
}

// Serialize encodes the circuit with encoding/gob.
func (c *Circuit) Serialize() []byte {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	err := encoder.Encode(c.forSerialization())
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func Deserialize(data []byte) (*Circuit, error) {
	decoder := gob.NewDecoder(bytes.NewBuffer(data))
	cfs := &circuitForSerialization{}
	if err := decoder.Decode(cfs); err != nil {
		return nil, err
	}
	return cfs.circuit()
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// EncodeCBOR encodes the circuit as deterministic CBOR.
func (c *Circuit) EncodeCBOR() ([]byte, error) {
	return cborEncMode.Marshal(c.forSerialization())
}

func DecodeCBOR(data []byte) (*Circuit, error) {
	cfs := &circuitForSerialization{}
	if err := cbor.Unmarshal(data, cfs); err != nil {
		return nil, err
	}
	return cfs.circuit()
}
