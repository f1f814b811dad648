package saturnlog

// QueueItem is a work queue entry: either a newly inserted fact to
// propagate, or a newly reached prefix to extend (spec.md §3, "Work
// queue").
type QueueItem struct {
	Fact   *FactItem
	Prefix *PrefixItem
}

type FactItem struct {
	Name   string
	Args   []Data
	Values []Data
}

type PrefixItem struct {
	Name  string
	Subst Substitution
}

func factQueueItem(name string, args, values []Data) QueueItem {
	return QueueItem{Fact: &FactItem{Name: name, Args: args, Values: values}}
}

func prefixQueueItem(name string, subst Substitution) QueueItem {
	return QueueItem{Prefix: &PrefixItem{Name: name, Subst: subst}}
}

func (q QueueItem) IsFact() bool   { return q.Fact != nil }
func (q QueueItem) IsPrefix() bool { return q.Prefix != nil }
