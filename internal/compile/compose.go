package compile

import "github.com/lcampos/quill/internal/workspace"

// Compose folds resolved leaves into the final predicate: no leaves means no
// filter (nil), a single leaf is returned bare, and anything more is wrapped
// in one `and` node. Conjunction is the only combining operation the service
// schema and this client support; there is deliberately no OR.
func Compose(leaves []*workspace.Filter) *workspace.Filter {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	default:
		return workspace.Conjunction(leaves)
	}
}
