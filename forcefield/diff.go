package forcefield

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between two force fields' serialized forms.
// An empty string means the force fields serialize identically. Useful for
// reviewing what a fitting run changed.
func Diff(old, new *ForceField) (string, error) {
	oldData, err := MarshalYAML(old)
	if err != nil {
		return "", err
	}
	newData, err := MarshalYAML(new)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(oldData)),
		B:        difflib.SplitLines(string(newData)),
		FromFile: "old",
		ToFile:   "new",
		Context:  3,
	})
}
