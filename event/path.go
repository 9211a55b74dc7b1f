package event

type direction uint

const (
	directionCapture direction = iota // root -> target
	directionBubble                   // target -> root
)

// buildPath walks the parent relation from target to root and returns
// the ordered traversal path for the given direction. The path always
// contains the target exactly once and is computed fresh per dispatch;
// the tree may mutate between dispatches.
func buildPath(target Target, dir direction) []Target {
	path := []Target{target}

	p, ok := target.(Parenter)
	if !ok {
		return path
	}
	for parent := p.Parent(); parent != nil; {
		if dir == directionCapture {
			path = append([]Target{parent}, path...)
		} else {
			path = append(path, parent)
		}
		if p, ok = parent.(Parenter); !ok {
			break
		}
		parent = p.Parent()
	}

	return path
}

// eventPath is the traversal path for one dispatch of e. A
// non-bubbling event visits only the target, in both passes; ancestors
// never see it. ComposedPath deliberately bypasses this and reports
// the full tree path.
func (e *Event) eventPath(target Target, dir direction) []Target {
	if !e.bubbles {
		return []Target{target}
	}
	return buildPath(target, dir)
}
