package report

// Drilldown accumulates a two-level group → subgroup → total breakdown with
// deterministic iteration order equal to first insertion. Report rows expand
// bucket → group → subgroup, so display order has to match the order
// transactions arrived in.
type Drilldown struct {
	groups map[string]*groupEntry
	order  []string
}

type groupEntry struct {
	subgroups map[string]float64
	order     []string
	total     float64
}

// NewDrilldown creates an empty breakdown.
func NewDrilldown() *Drilldown {
	return &Drilldown{groups: make(map[string]*groupEntry)}
}

// Add accumulates amount under group/subgroup.
func (d *Drilldown) Add(group, subgroup string, amount float64) {
	entry, ok := d.groups[group]
	if !ok {
		entry = &groupEntry{subgroups: make(map[string]float64)}
		d.groups[group] = entry
		d.order = append(d.order, group)
	}
	if _, seen := entry.subgroups[subgroup]; !seen {
		entry.order = append(entry.order, subgroup)
	}
	entry.subgroups[subgroup] += amount
	entry.total += amount
}

// GroupBreakdown is one expanded group row with its subgroup rows.
type GroupBreakdown struct {
	Name      string
	Total     float64
	Subgroups []SubgroupBreakdown
}

// SubgroupBreakdown is one leaf row of the drill-down.
type SubgroupBreakdown struct {
	Name  string
	Total float64
}

// Groups materializes the breakdown in first-insertion order.
func (d *Drilldown) Groups() []GroupBreakdown {
	if d == nil {
		return nil
	}
	groups := make([]GroupBreakdown, 0, len(d.order))
	for _, name := range d.order {
		entry := d.groups[name]
		subs := make([]SubgroupBreakdown, 0, len(entry.order))
		for _, sub := range entry.order {
			subs = append(subs, SubgroupBreakdown{Name: sub, Total: entry.subgroups[sub]})
		}
		groups = append(groups, GroupBreakdown{Name: name, Total: entry.total, Subgroups: subs})
	}
	return groups
}

// Total returns the sum over all groups.
func (d *Drilldown) Total() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, entry := range d.groups {
		total += entry.total
	}
	return total
}

// Len returns the number of distinct groups.
func (d *Drilldown) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}
