package tfoutput

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/thoas/go-funk"

	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

// Output is one named value from `terraform output -json`. Order matters
// to the callers, so outputs are kept as a slice rather than a map.
type Output struct {
	Name      string
	Value     interface{}
	Sensitive bool
}

type OutputSet []Output

func (s OutputSet) Names() []string {
	return funk.Map(s, func(o Output) string {
		return o.Name
	}).([]string)
}

type outputRecord struct {
	Sensitive bool            `json:"sensitive"`
	Type      json.RawMessage `json:"type,omitempty"`
	Value     interface{}     `json:"value"`
}

// Fetch runs `terraform output -json` in dir and parses its stdout. Each
// call re-invokes terraform; nothing is cached.
func Fetch(deps util.IDependencies, binary string, dir string) (OutputSet, error) {
	stdout, stderr, exitCode := deps.ExecuteInDir(dir, binary, "output", "-json")
	if exitCode != 0 {
		return nil, &ExternalToolError{ExitCode: exitCode, Stderr: stderr}
	}
	return parseOutputs([]byte(stdout))
}

// parseOutputs decodes the terraform output document while preserving the
// object key order as received. A plain map decode would randomize it.
func parseOutputs(data []byte) (OutputSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, &MalformedOutputError{Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &MalformedOutputError{Err: errors.Errorf("expected a JSON object, got %v", tok)}
	}
	set := OutputSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &MalformedOutputError{Err: err}
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, &MalformedOutputError{Err: errors.Errorf("expected an object key, got %v", keyTok)}
		}
		var rec outputRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, &MalformedOutputError{Err: errors.Wrapf(err, "output %s", name)}
		}
		set = append(set, Output{Name: name, Value: rec.Value, Sensitive: rec.Sensitive})
	}
	if _, err := dec.Token(); err != nil {
		return nil, &MalformedOutputError{Err: err}
	}
	return set, nil
}
