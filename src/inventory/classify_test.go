package inventory

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/terraform-tools/terraform-ansible-inventory/src/tfoutput"
)

var _ = Describe("IPv4 shape predicate", func() {
	DescribeTable("candidate strings",
		func(candidate string, expected bool) {
			Expect(isIPv4Shaped(candidate)).To(Equal(expected))
		},
		Entry("plain address", "1.2.3.4", true),
		Entry("all zeros", "0.0.0.0", true),
		Entry("broadcast", "255.255.255.255", true),
		Entry("octet out of range", "999.1.1.1", false),
		Entry("too few parts", "1.2.3", false),
		Entry("too many parts", "1.2.3.4.5", false),
		Entry("letters", "a.b.c.d", false),
		Entry("word", "abc", false),
		Entry("empty string", "", false),
		Entry("negative octet", "-1.2.3.4", false),
		Entry("embedded space", "1.2. 3.4", false),
	)
})

var _ = Describe("Base name derivation", func() {
	DescribeTable("output names",
		func(outputName, expected string) {
			Expect(baseName(outputName)).To(Equal(expected))
		},
		Entry("single suffix", "ubuntu_ip", "ubuntu"),
		Entry("interior segment", "db_primary_ip", "db-primary"),
		Entry("no ip marker", "bastion", "bastion"),
		Entry("underscores only", "edge_node", "edge-node"),
		Entry("every occurrence removed", "x_ip_ip", "x"),
	)
})

var _ = Describe("Output classification", func() {
	var inv *Inventory

	BeforeEach(func() {
		inv = NewInventory()
	})

	It("adds a host for a scalar address", func() {
		added := inv.addOutput(tfoutput.Output{Name: "ubuntu_ip", Value: "13.42.7.8"})
		Expect(added).To(BeTrue())
		Expect(inv.All.Hosts).To(Equal([]string{"ubuntu"}))
		Expect(inv.Meta.HostVars["ubuntu"].AnsibleHost.String()).To(Equal("13.42.7.8"))
	})

	It("ignores a scalar that is not address shaped", func() {
		Expect(inv.addOutput(tfoutput.Output{Name: "note", Value: "hello"})).To(BeFalse())
		Expect(inv.All.Hosts).To(BeEmpty())
	})

	It("ignores numbers, booleans, nulls and objects", func() {
		Expect(inv.addOutput(tfoutput.Output{Name: "count", Value: float64(42)})).To(BeFalse())
		Expect(inv.addOutput(tfoutput.Output{Name: "flag", Value: true})).To(BeFalse())
		Expect(inv.addOutput(tfoutput.Output{Name: "nothing", Value: nil})).To(BeFalse())
		Expect(inv.addOutput(tfoutput.Output{Name: "tags", Value: map[string]interface{}{"a": "1.2.3.4"}})).To(BeFalse())
		Expect(inv.All.Hosts).To(BeEmpty())
	})

	It("suffixes every element of a multi address list", func() {
		added := inv.addOutput(tfoutput.Output{Name: "web_ip", Value: []interface{}{"1.1.1.1", "2.2.2.2"}})
		Expect(added).To(BeTrue())
		Expect(inv.All.Hosts).To(Equal([]string{"web-1", "web-2"}))
		Expect(inv.Meta.HostVars["web-1"].AnsibleHost.String()).To(Equal("1.1.1.1"))
		Expect(inv.Meta.HostVars["web-2"].AnsibleHost.String()).To(Equal("2.2.2.2"))
	})

	It("leaves a single qualifying element unsuffixed regardless of list length", func() {
		added := inv.addOutput(tfoutput.Output{Name: "app_ip", Value: []interface{}{"not-an-ip", "10.0.0.7", "also-not"}})
		Expect(added).To(BeTrue())
		Expect(inv.All.Hosts).To(Equal([]string{"app"}))
		Expect(inv.Meta.HostVars["app"].AnsibleHost.String()).To(Equal("10.0.0.7"))
	})

	It("keeps original list positions in suffixes", func() {
		added := inv.addOutput(tfoutput.Output{Name: "node_ip", Value: []interface{}{"1.1.1.1", "junk", "2.2.2.2"}})
		Expect(added).To(BeTrue())
		Expect(inv.All.Hosts).To(Equal([]string{"node-1", "node-3"}))
		Expect(inv.Meta.HostVars["node-3"].AnsibleHost.String()).To(Equal("2.2.2.2"))
	})

	It("skips non string elements without disturbing positions", func() {
		added := inv.addOutput(tfoutput.Output{Name: "mixed_ip", Value: []interface{}{float64(1), "3.3.3.3", nil, "4.4.4.4"}})
		Expect(added).To(BeTrue())
		Expect(inv.All.Hosts).To(Equal([]string{"mixed-2", "mixed-4"}))
	})

	It("ignores a list with no qualifying element", func() {
		Expect(inv.addOutput(tfoutput.Output{Name: "names", Value: []interface{}{"alpha", "beta"}})).To(BeFalse())
		Expect(inv.All.Hosts).To(BeEmpty())
	})

	It("ignores an empty list", func() {
		Expect(inv.addOutput(tfoutput.Output{Name: "spare_ip", Value: []interface{}{}})).To(BeFalse())
	})
})
