package nav

// Steps flattens the position into a linear step count. Each group
// contributes its intro plus one step per slot, and the end section adds a
// final step; the start section is step 0.
func Steps(p *Position, reg *Registry) (current, total int) {
	for g := 0; g < reg.GroupCount(); g++ {
		total += 1 + reg.SlotCount(g)
	}
	total++

	role := p.Role(reg)
	switch role.Kind {
	case RoleStart:
		return 0, total
	case RoleEnd:
		return total - 1, total
	}
	for g := 0; g < role.Group; g++ {
		current += 1 + reg.SlotCount(g)
	}
	if role.Kind == RoleGroupBody {
		current += 1 + p.Slot(role.Group)
	}
	return current, total
}

// Progress returns the position's share of the flattened sequence as a
// percentage in [0, 100].
func Progress(p *Position, reg *Registry) float64 {
	current, total := Steps(p, reg)
	if total <= 1 {
		return 0
	}
	return float64(current) / float64(total-1) * 100
}
