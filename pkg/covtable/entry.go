package covtable

import (
	"fmt"

	"github.com/henderiw/covtable/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Name() string
	Coverage() *interval.Set
	Labels() labels.Set
	String() string
	Equal(e2 Entry) bool
}

type entry struct {
	name   string
	cov    *interval.Set
	labels labels.Set
}

type Entries []Entry

func (r entry) Name() string { return r.name }

func (r entry) Coverage() *interval.Set { return r.cov }

func (r entry) Labels() labels.Set { return r.labels }

func (r entry) String() string {
	return fmt.Sprintf("name: %s, coverage: %s, labels: %s", r.name, r.cov.String(), r.labels.String())
}
func (r entry) Equal(e2 Entry) bool {
	return r.name == e2.Name() &&
		r.cov.String() == e2.Coverage().String() &&
		r.labels.String() == e2.Labels().String()
}

func NewEntry(name string, cov *interval.Set, lbls labels.Set) Entry {
	return entry{
		name:   name,
		cov:    cov,
		labels: lbls,
	}
}
