//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/mattcalkohn/Elliptic-Curve-DLP/pkg/ecdlp"
	"github.com/mattcalkohn/Elliptic-Curve-DLP/pkg/weierstrass"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Elliptic-Curve-DLP WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDLP", map[string]interface{}{
		"Solve":    js.FuncOf(Solve),
		"Multiply": js.FuncOf(Multiply),
	})

	<-c
}

// curveInput mirrors the curve parameters as JSON. All integers are decimal
// strings so arbitrary-size primes survive the JS boundary.
type curveInput struct {
	P string `json:"p"`
	A string `json:"a"`
	B string `json:"b"`
}

func (in curveInput) curve() (weierstrass.Curve, error) {
	p, err := parseBig(in.P)
	if err != nil {
		return weierstrass.Curve{}, err
	}
	a, err := parseBig(in.A)
	if err != nil {
		return weierstrass.Curve{}, err
	}
	b, err := parseBig(in.B)
	if err != nil {
		return weierstrass.Curve{}, err
	}
	return weierstrass.NewCurve(p, a, b), nil
}

// parsePoint interprets a coordinate pair; empty strings mean the point at
// infinity.
func parsePoint(xs, ys string) (weierstrass.Point, error) {
	if xs == "" && ys == "" {
		return weierstrass.Infinity(), nil
	}
	x, err := parseBig(xs)
	if err != nil {
		return weierstrass.Point{}, err
	}
	y, err := parseBig(ys)
	if err != nil {
		return weierstrass.Point{}, err
	}
	return weierstrass.NewPoint(x, y), nil
}

func parseBig(s string) (*big.Int, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("cannot parse integer: %q", s)
	}
	return z, nil
}

// Solve runs the discrete-log search.
// Arguments:
// 0: JSON string of parameters
// Returns:
// JSON string {"n": "..."} or an "error: ..." string
func Solve(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type solveInput struct {
		curveInput
		Px      string `json:"px"`
		Py      string `json:"py"`
		Qx      string `json:"qx"`
		Qy      string `json:"qy"`
		Workers int    `json:"workers"` // 0 or 1 = serial
	}

	var input solveInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	curve, err := input.curve()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	base, err := parsePoint(input.Px, input.Py)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	target, err := parsePoint(input.Qx, input.Qy)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var n *big.Int
	if input.Workers > 1 {
		n, err = ecdlp.SolveParallel(context.Background(), curve, base, target, input.Workers)
	} else {
		n, err = ecdlp.Solve(curve, base, target)
	}
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	respBytes, _ := json.Marshal(map[string]string{"n": n.String()})
	return string(respBytes)
}

// Multiply computes n·P.
// Arguments:
// 0: JSON string of parameters
// Returns:
// JSON string {"x": "...", "y": "...", "infinity": "..."} or an "error: ..." string
func Multiply(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type multiplyInput struct {
		curveInput
		N  string `json:"n"`
		Px string `json:"px"`
		Py string `json:"py"`
	}

	var input multiplyInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	curve, err := input.curve()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pt, err := parsePoint(input.Px, input.Py)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	n, err := parseBig(input.N)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	result := curve.Multiply(n, pt)

	resp := map[string]string{"infinity": "false"}
	if result.IsInfinity() {
		resp["infinity"] = "true"
	} else {
		x, y := result.Coords()
		resp["x"] = x.String()
		resp["y"] = y.String()
	}

	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}
