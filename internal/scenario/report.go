package scenario

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/geokit/pkg/collision"
	"github.com/zeusync/geokit/pkg/concurrent"
)

var digests = concurrent.NewPool(xxhash.New, func(d *xxhash.Digest) { d.Reset() })

type Report struct {
	RunID       string        `json:"run_id"`
	Name        string        `json:"name"`
	Workers     int           `json:"workers"`
	Queries     []QueryResult `json:"queries"`
	Hulls       []HullResult  `json:"hulls"`
	Hits        int           `json:"hits"`
	Misses      int           `json:"misses"`
	Failures    int           `json:"failures"`
	Fingerprint uint64        `json:"fingerprint"`
	ElapsedMs   float64       `json:"elapsed_ms"`
}

type QueryResult struct {
	ID      string   `json:"id"`
	A       string   `json:"a"`
	B       string   `json:"b"`
	Hit     bool     `json:"hit"`
	Contact *Contact `json:"contact,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type Contact struct {
	Point       Point   `json:"point"`
	Normal      Point   `json:"normal"`
	Penetration float32 `json:"penetration"`
}

func contactOf(hit collision.HitData) *Contact {
	return &Contact{
		Point:       pointOf(hit.Point),
		Normal:      pointOf(hit.Normal),
		Penetration: hit.Penetration,
	}
}

type HullResult struct {
	Name      string  `json:"name"`
	Random    bool    `json:"random,omitempty"`
	Input     int     `json:"input"`
	Points    []Point `json:"points"`
	Clockwise bool    `json:"clockwise"`
	Area      float32 `json:"area"`
}

// Fingerprint hashes the query and hull results in report order. Run id and
// timing are left out, so repeated runs of one scenario agree.
func Fingerprint(r *Report) uint64 {
	d := digests.Get()
	defer digests.Put(d)
	var buf []byte

	for _, q := range r.Queries {
		buf = appendString(buf[:0], q.ID)
		buf = appendString(buf, q.A)
		buf = appendString(buf, q.B)
		buf = appendBool(buf, q.Hit)
		if c := q.Contact; c != nil {
			buf = appendPoint(buf, c.Point)
			buf = appendPoint(buf, c.Normal)
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c.Penetration))
		}
		buf = appendString(buf, q.Error)
		_, _ = d.Write(buf)
	}

	for _, h := range r.Hulls {
		buf = appendString(buf[:0], h.Name)
		buf = appendBool(buf, h.Random)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(h.Input))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(h.Points)))
		for _, p := range h.Points {
			buf = appendPoint(buf, p)
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 1)
	}
	return append(buf, 0)
}

func appendPoint(buf []byte, p Point) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p[0]))
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(p[1]))
}
