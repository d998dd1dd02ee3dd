package generics

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestEngineIsSafeForConcurrentUse(t *testing.T) {
	f := newFixture(t)
	r := f.registry
	useSite := f.ref(t, "C", r.Type("List", r.Type("String")))
	target := f.shape(t, "A")
	const want = "A<List<String>, Long, String>"

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			got, err := f.engine.Parameterize(useSite, target)
			if err != nil {
				return err
			}
			if got.String() != want {
				return fmt.Errorf("expected %s, got %s", want, got)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if useSite.String() != "C<List<String>>" {
		t.Errorf("Use site was modified: %s", useSite)
	}
}
