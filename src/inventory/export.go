package inventory

import (
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

// ExportYAML writes the document as a static YAML inventory, the grouped
// form ansible reads from a plain file. The dynamic JSON document on
// stdout stays the source of truth; this is a convenience copy.
func (i *Inventory) ExportYAML(deps util.IDependencies, path string) error {
	doc := map[string]interface{}{
		"all": map[string]interface{}{
			"children": map[string]interface{}{
				GroupName: map[string]interface{}{
					"hosts": i.Meta.HostVars,
				},
			},
		},
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML inventory")
	}
	if err := deps.WriteFile(path, b, 0644); err != nil {
		return errors.Wrapf(err, "writing YAML inventory to %s", path)
	}
	return nil
}
