package inventory

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
	log "github.com/sirupsen/logrus"

	"github.com/terraform-tools/terraform-ansible-inventory/src/tfoutput"
	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

const (
	GroupName         = "aws_instances"
	pythonInterpreter = "/usr/bin/python3"
	connectionKind    = "ssh"
)

type HostVars struct {
	AnsibleHost              strfmt.IPv4 `json:"ansible_host"`
	AnsiblePythonInterpreter string      `json:"ansible_python_interpreter"`
	AnsibleConnection        string      `json:"ansible_connection"`
}

type Meta struct {
	HostVars map[string]HostVars `json:"hostvars"`
}

type AllGroup struct {
	Hosts    []string `json:"hosts"`
	Children []string `json:"children"`
}

type HostGroup struct {
	Hosts []string `json:"hosts"`
}

// Inventory is the dynamic-inventory document in the exact shape ansible
// expects. Field order here fixes the key order of the printed JSON.
type Inventory struct {
	Meta         Meta      `json:"_meta"`
	All          AllGroup  `json:"all"`
	AwsInstances HostGroup `json:"aws_instances"`
}

func NewInventory() *Inventory {
	return &Inventory{
		Meta:         Meta{HostVars: map[string]HostVars{}},
		All:          AllGroup{Hosts: []string{}, Children: []string{GroupName}},
		AwsInstances: HostGroup{Hosts: []string{}},
	}
}

// AddHost appends hostname to both groups and records its variables.
// Collisions overwrite the variables but still grow the host lists, which
// matches the behavior ansible has come to depend on.
func (i *Inventory) AddHost(hostname string, address strfmt.IPv4) {
	i.All.Hosts = append(i.All.Hosts, hostname)
	i.AwsInstances.Hosts = append(i.AwsInstances.Hosts, hostname)
	i.Meta.HostVars[hostname] = HostVars{
		AnsibleHost:              address,
		AnsiblePythonInterpreter: pythonInterpreter,
		AnsibleConnection:        connectionKind,
	}
}

// Build fetches the terraform outputs and assembles a fresh document.
// Every call starts from an empty skeleton; nothing accumulates between
// calls.
func Build(deps util.IDependencies, binary string, dir string) (*Inventory, error) {
	outputs, err := tfoutput.Fetch(deps, binary, dir)
	if err != nil {
		return nil, err
	}
	inv := NewInventory()
	hostsAdded := false
	for _, output := range outputs {
		if inv.addOutput(output) {
			hostsAdded = true
		}
	}
	if !hostsAdded {
		log.Warnf("No IP address outputs found in terraform state; available outputs: %v", outputs.Names())
	}
	return inv, nil
}

func (i *Inventory) ToJSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// HostJSON returns the variable mapping of one host, or an empty object
// when the host is unknown. An unknown host is not an error.
func (i *Inventory) HostJSON(hostname string) ([]byte, error) {
	vars, ok := i.Meta.HostVars[hostname]
	if !ok {
		return []byte("{}"), nil
	}
	return json.MarshalIndent(vars, "", "  ")
}
