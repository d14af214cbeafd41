package superjson

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/rmera/superpose"
	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/mat"
)

func testResult(Te *testing.T) *superpose.Result {
	mobile, err := v3.NewMatrix([]float64{
		0.1, 0.2, 0.3,
		1.5, -0.4, 0.9,
		-1.1, 2.0, 0.6,
		0.8, 1.3, -1.7,
	})
	if err != nil {
		Te.Error(err)
	}
	target, err := v3.NewMatrix([]float64{
		2.0, 0.1, 0.4,
		0.3, 1.8, -0.2,
		1.1, -0.9, 1.5,
		-0.6, 0.7, 2.2,
	})
	if err != nil {
		Te.Error(err)
	}
	r, err := superpose.Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	return r
}

func sameResult(Te *testing.T, r, back *superpose.Result, what string) {
	if math.Abs(back.RMSD-r.RMSD) > 1e-12 {
		Te.Error("RMSD changed through the", what, "round trip", r.RMSD, back.RMSD)
	}
	if !mat.EqualApprox(back.Rotation, r.Rotation, 1e-12) {
		Te.Error("rotation changed through the", what, "round trip")
	}
	if !mat.EqualApprox(back.Translation, r.Translation, 1e-12) {
		Te.Error("translation changed through the", what, "round trip")
	}
	if !mat.EqualApprox(back.Aligned, r.Aligned, 1e-12) {
		Te.Error("coordinates changed through the", what, "round trip")
	}
}

func TestResultRoundTrip(Te *testing.T) {
	r := testResult(Te)
	buf := new(bytes.Buffer)
	if jerr := EncodeResult(r, buf); jerr != nil {
		Te.Error(jerr)
	}
	fmt.Println("encoded result:", buf.Len(), "bytes")
	back, jerr := DecodeResult(bufio.NewReader(buf))
	if jerr != nil {
		Te.Error(jerr)
	}
	sameResult(Te, r, back, "plain")
	if jerr := EncodeResult(nil, buf); jerr == nil {
		Te.Error("an incomplete result should not be encodable")
	}
	//a truncated stream must not pass for a complete one
	short := new(bytes.Buffer)
	if jerr := EncodeResult(r, short); jerr != nil {
		Te.Error(jerr)
	}
	lines := bytes.SplitAfter(short.Bytes(), []byte("\n"))
	truncated := bytes.Join(lines[0:len(lines)-2], []byte(""))
	if _, jerr := DecodeResult(bufio.NewReader(bytes.NewReader(truncated))); jerr == nil {
		Te.Error("a truncated stream should be an error")
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	r := testResult(Te)
	plain := new(bytes.Buffer)
	if jerr := EncodeResult(r, plain); jerr != nil {
		Te.Error(jerr)
	}
	comp := new(bytes.Buffer)
	if jerr := CompressResult(r, comp); jerr != nil {
		Te.Error(jerr)
	}
	fmt.Println("plain:", plain.Len(), "bytes, compressed:", comp.Len(), "bytes")
	back, jerr := DecompressResult(comp)
	if jerr != nil {
		Te.Error(jerr)
	}
	sameResult(Te, r, back, "compressed")
	//garbage in, error out
	if _, jerr := DecompressResult(bytes.NewReader([]byte("not a zstd stream"))); jerr == nil {
		Te.Error("garbage input should be an error")
	}
}

func TestOptionsAndErrors(Te *testing.T) {
	in := bufio.NewReader(bytes.NewReader([]byte("{\"Weights\":[1,2,3],\"FitIndexes\":[0,2],\"Strict\":true}\n")))
	o, jerr := DecodeOptions(in)
	if jerr != nil {
		Te.Error(jerr)
	}
	if len(o.Weights) != 3 || o.Weights[1] != 2 || len(o.FitIndexes) != 2 || !o.Strict {
		Te.Error("options not decoded correctly", o)
	}
	so := o.SuperposeOptions()
	if !so.Strict() || len(so.Weights()) != 3 {
		Te.Error("options not translated correctly")
	}
	if _, jerr := DecodeOptions(bufio.NewReader(bytes.NewReader([]byte("{malformed\n")))); jerr == nil {
		Te.Error("malformed options should be an error")
	}
	jerr = NewError("options", "TestOptionsAndErrors", fmt.Errorf("no such weight"))
	if !jerr.IsError || !jerr.InOptions || jerr.InProcess {
		Te.Error("wrong error stage", jerr)
	}
	if jerr.Error() != "no such weight" {
		Te.Error("the message should survive", jerr.Error())
	}
	marshaled := jerr.Marshal()
	if !bytes.Contains(marshaled, []byte("\"InOptions\":true")) {
		Te.Error("unexpected serialized error", string(marshaled))
	}
	fmt.Println("serialized error:", string(marshaled))
}
