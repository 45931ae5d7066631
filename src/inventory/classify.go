package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"

	"github.com/terraform-tools/terraform-ansible-inventory/src/tfoutput"
)

// isIPv4Shaped is a purely syntactic check: four dot-separated integer
// tokens in [0,255]. It deliberately does not reject reserved ranges or
// leading zeros.
func isIPv4Shaped(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// baseName derives the hostname stem from an output name: every "_ip"
// substring is removed, then underscores become dashes.
func baseName(outputName string) string {
	return strings.ReplaceAll(strings.ReplaceAll(outputName, "_ip", ""), "_", "-")
}

// addOutput classifies one output and contributes its host entries, if
// any. List elements keep their original positions in the suffix: a
// singleton qualifier gets the bare stem, multiple qualifiers get
// "{stem}-{i+1}" where i is the element's index in the list as received,
// never its rank among the qualifying elements.
func (i *Inventory) addOutput(output tfoutput.Output) bool {
	switch value := output.Value.(type) {
	case []interface{}:
		qualifying := 0
		for _, element := range value {
			if s, ok := element.(string); ok && isIPv4Shaped(s) {
				qualifying++
			}
		}
		if qualifying == 0 {
			return false
		}
		base := baseName(output.Name)
		for index, element := range value {
			s, ok := element.(string)
			if !ok || !isIPv4Shaped(s) {
				continue
			}
			hostname := base
			if qualifying > 1 {
				hostname = fmt.Sprintf("%s-%d", base, index+1)
			}
			i.AddHost(hostname, strfmt.IPv4(s))
		}
		return true
	case string:
		if !isIPv4Shaped(value) {
			return false
		}
		i.AddHost(baseName(output.Name), strfmt.IPv4(value))
		return true
	default:
		return false
	}
}
