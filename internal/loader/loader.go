package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/latticekit/plantgraph/core"
)

// requiredFields lists every CSV column the input must carry.
var requiredFields = []string{
	"Mark", "Father_mark", "Father_cond", "Description", "InitStatus",
	"Area", "PerturbationResistant", "Type", "Service",
}

// nullFatherMark is the sentinel value declaring a row has no predecessor
// (a root/SOURCE node).
const nullFatherMark = "NULL"

// LoadFile opens path and parses it as the plant topology input CSV.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses r as the plant topology input CSV: one row per element,
// Father_mark == "NULL" declaring a root node, duplicate Mark rows
// updating the same node's attributes. Invalid input (a missing column,
// an empty required field, a non-numeric Service on any row, or an
// unrecognized Father_cond on a row that declares an edge) is rejected
// with an error, and no graph is returned.
func Load(r io.Reader) (*core.Graph, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, field := range requiredFields {
		if _, ok := index[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, field)
		}
	}

	g := core.NewGraph()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: reading row: %w", err)
		}

		row := make(map[string]string, len(requiredFields))
		for _, field := range requiredFields {
			row[field] = record[index[field]]
		}
		for _, field := range requiredFields {
			if row[field] == "" && field != "Father_mark" {
				return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
			}
		}

		weight, err := strconv.ParseFloat(row["Service"], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidService, row["Service"])
		}

		mark := row["Mark"]
		node, err := g.AddNode(mark)
		if err != nil {
			return nil, err
		}
		node.Description = row["Description"]
		node.InitStatus = row["InitStatus"]
		node.Area = row["Area"]
		node.PerturbationResistant = row["PerturbationResistant"]
		node.Type = core.NodeType(row["Type"])

		fatherMark := row["Father_mark"]
		if fatherMark == nullFatherMark || fatherMark == "" {
			continue
		}

		cond := core.FatherCond(row["Father_cond"])
		if !cond.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, row["Father_cond"])
		}

		if _, err := g.AddNode(fatherMark); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(fatherMark, mark, cond, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
