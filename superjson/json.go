/*
 * json.go, part of superpose.
 *
 * Copyright 2022 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package superjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/superpose"
	v3 "github.com/rmera/superpose/v3"
)

//A ready-to-serialize container for coordinates.
type Coords struct {
	Coords []float64
}

//A ready-to-serialize container for the outcome of a superposition.
//The rotation goes in row-major order. The aligned coordinates are not
//part of the header: they are streamed after it, one vector per line,
//NVecs lines in total.
type Result struct {
	RMSD        float64
	Rotation    []float64
	Translation []float64
	NVecs       int
}

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool //If error, was it in parsing the options?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //an error while serializing the error, so both go in the panic.
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Options passed from the calling external program.
type Options struct {
	Weights    []float64
	FitIndexes []int //if given, only these points should drive the fit
	Strict     bool
}

//DecodeOptions decodes or unmarshals json options into an Options structure.
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	ret := new(Options)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	return ret, nil
}

//SuperposeOptions expresses the transmitted options in the library's own
//type. FitIndexes is not included, as it travels separately, to AlignSubset.
func (J *Options) SuperposeOptions() *superpose.Options {
	o := superpose.DefaultOptions()
	o.Strict(J.Strict)
	if J.Weights != nil {
		o.Weights(J.Weights)
	}
	return o
}

//EncodeResult encodes the whole outcome of a superposition and writes it
//to out: first a single line with the Result header, then the aligned
//coordinates, one vector per line.
func EncodeResult(r *superpose.Result, out io.Writer) *Error {
	const funcname = "EncodeResult"
	if r == nil || r.Rotation == nil || r.Translation == nil || r.Aligned == nil {
		return NewError("postprocess", funcname, fmt.Errorf("incomplete result given"))
	}
	enc := json.NewEncoder(out)
	j := new(Result)
	j.RMSD = r.RMSD
	j.Rotation = make([]float64, 0, 9)
	t := make([]float64, 3)
	for i := 0; i < 3; i++ {
		r.Rotation.Row(t, i)
		j.Rotation = append(j.Rotation, t...)
	}
	j.Translation = r.Translation.Row(nil, 0)
	j.NVecs = r.Aligned.NVecs()
	if err := enc.Encode(j); err != nil {
		return NewError("postprocess", funcname, err)
	}
	return EncodeCoords(r.Aligned, enc)
}

//DecodeResult reads a superposition result written by EncodeResult: the
//header line first, then the NVecs aligned vectors.
func DecodeResult(in *bufio.Reader) (*superpose.Result, *Error) {
	const funcname = "DecodeResult"
	line, err := in.ReadBytes('\n')
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	j := new(Result)
	if err = json.Unmarshal(line, j); err != nil {
		return nil, NewError("process", funcname, err)
	}
	if len(j.Rotation) != 9 || len(j.Translation) != 3 {
		return nil, NewError("process", funcname, fmt.Errorf("malformed header: %d rotation and %d translation elements", len(j.Rotation), len(j.Translation)))
	}
	rot, err := v3.NewMatrix(j.Rotation)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	trans, err := v3.NewMatrix(j.Translation)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	coords, jerr := DecodeCoords(in, j.NVecs)
	if jerr != nil {
		return nil, jerr
	}
	if coords.NVecs() != j.NVecs {
		return nil, NewError("process", funcname, fmt.Errorf("the header promised %d vectors but %d were read", j.NVecs, coords.NVecs()))
	}
	return &superpose.Result{RMSD: j.RMSD, Rotation: rot, Translation: trans, Aligned: coords}, nil
}

//EncodeCoords encodes a set of coordinates into JSON, one vector per line.
func EncodeCoords(coords *v3.Matrix, enc *json.Encoder) *Error {
	c := new(Coords)
	t := make([]float64, 3, 3)
	for i := 0; i < coords.NVecs(); i++ {
		c.Coords = coords.Row(t, i)
		if err := enc.Encode(c); err != nil {
			return NewError("postprocess", "superjson.EncodeCoords", err)
		}
	}
	return nil
}

//DecodeCoords streams from a bufio.Reader containing 3*vecs JSON floats
//into a v3.Matrix with vecs rows.
func DecodeCoords(stream *bufio.Reader, vecs int) (*v3.Matrix, *Error) {
	const funcname = "DecodeCoords"
	rawcoords := make([]float64, 0, 3*vecs)
	for i := 0; i < vecs; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil {
			break
		}
		ctemp := new(Coords)
		if err = json.Unmarshal(line, ctemp); err != nil {
			return nil, NewError("process", funcname, err)
		}
		rawcoords = append(rawcoords, ctemp.Coords...)
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	return coords, nil
}

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//CompressResult writes the result to out just as EncodeResult does, with
//the whole stream zstd-compressed.
func CompressResult(r *superpose.Result, out io.Writer) *Error {
	const funcname = "CompressResult"
	z, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return NewError("postprocess", funcname, err)
	}
	if jerr := EncodeResult(r, z); jerr != nil {
		z.Close()
		return jerr
	}
	if err := z.Close(); err != nil {
		return NewError("postprocess", funcname, err)
	}
	return nil
}

//DecompressResult reads a zstd-compressed result written by CompressResult.
func DecompressResult(in io.Reader) (*superpose.Result, *Error) {
	const funcname = "DecompressResult"
	z, err := zstd.NewReader(in)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	ql := stdql{z.Close, z}
	defer ql.Close()
	return DecodeResult(bufio.NewReader(ql))
}
