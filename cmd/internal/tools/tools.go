package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/hamming13/linearblock"
	"github.com/nathanhack/hamming13/linearblock/messagepassing/bitflipping/harddecision"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	SyndromeDecoder = "syndrome"
	GallagerDecoder = "gallager"
	NoDecoder       = "none"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return errors.Wrapf(err, "stats key %q", fs)
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

//TypeInfo names the channel and decoder a results file was made with.
func TypeInfo(channel, decoder string) string {
	return fmt.Sprintf("%v:%v", channel, decoder)
}

//Corrector returns the correction function for the named decoder.
func Corrector(decoder string, maxIter int) (benchmarking.Correction, error) {
	switch decoder {
	case SyndromeDecoder:
		return func(received *codeword.Codeword) {
			codeword.Correct(received)
		}, nil
	case GallagerDecoder:
		block := linearblock.New()
		return func(received *codeword.Codeword) {
			//the Gallager alg keeps per codeword state so each call gets its own
			harddecision.BitFlipping(harddecision.NewGallager(block.H), block.H, received, maxIter)
		}, nil
	case NoDecoder:
		return func(received *codeword.Codeword) {}, nil
	}
	return nil, errors.Errorf("unknown decoder %q expected one of %v, %v or %v", decoder, SyndromeDecoder, GallagerDecoder, NoDecoder)
}

//LoadOrCreateResults loads the results at filepath, or starts new ones if the
// file does not exist, and checks they were made with typeInfo against eccInfo.
func LoadOrCreateResults(filepath, typeInfo, eccInfo string) (*SimulationStats, error) {
	data, err := LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return nil, errors.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, errors.Errorf("results loaded do not match the ECC")
	}
	return data, nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "error while reading file %v", filepath)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, errors.Wrapf(err, "error while unmarshalling file %v", filepath)
	}
	return &stat, nil
}

//LoadAllResults loads every results file and returns the sorted union of their points.
func LoadAllResults(filepaths []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(filepaths))
	points := make(map[float64]bool)
	for i, resultFile := range filepaths {
		stat, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if stat == nil {
			return nil, nil, errors.Errorf("results file %v does not exist", resultFile)
		}
		for p := range stat.Stats {
			points[p] = true
		}
		stats[i] = stat
	}

	sorted := maps.Keys(points)
	slices.Sort(sorted)
	return stats, sorted, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "error serializing results")
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return errors.Wrapf(err, "error while saving results to %v", filepath)
	}
	return nil
}

const (
	CodewordMetric = "codeword"
	MessageMetric  = "message"
	SymbolMetric   = "symbol"
)

//Metric picks the mean of the named error rate.
func Metric(s benchmarking.Stats, metric string) float64 {
	switch metric {
	case MessageMetric:
		return s.MessageError.Mean
	case SymbolMetric:
		return s.SymbolError.Mean
	default:
		return s.CodewordError.Mean
	}
}
