package db_models

import (
	"slices"

	"github.com/lib/pq"
)

type Role struct {
	BaseModel
	Name         string         `gorm:"not null"`
	Permissions  []Permission   `gorm:"many2many:role_permissions"`
	AdminIDs     pq.StringArray `gorm:"type:text[]"`
	OrganizerIDs pq.StringArray `gorm:"type:text[]"`
	UserIDs      pq.StringArray `gorm:"type:text[]"`
}

func (r *Role) members(kind AccountKind) *pq.StringArray {
	switch kind {
	case AdminKind:
		return &r.AdminIDs
	case OrganizerKind:
		return &r.OrganizerIDs
	case UserKind:
		return &r.UserIDs
	}
	return nil
}

// Members returns the membership set of the given account kind.
func (r *Role) Members(kind AccountKind) []string {
	if set := r.members(kind); set != nil {
		return *set
	}
	return nil
}

// AddMembers is a set union: ids already present are skipped, order of
// first insertion is kept. It reports whether the set changed.
func (r *Role) AddMembers(kind AccountKind, ids ...string) bool {
	set := r.members(kind)
	if set == nil {
		return false
	}
	changed := false
	for _, id := range ids {
		if id == "" || slices.Contains(*set, id) {
			continue
		}
		*set = append(*set, id)
		changed = true
	}
	return changed
}

// RemoveMembers is a set difference. It reports whether the set changed.
func (r *Role) RemoveMembers(kind AccountKind, ids ...string) bool {
	set := r.members(kind)
	if set == nil || len(*set) == 0 {
		return false
	}
	kept := make(pq.StringArray, 0, len(*set))
	for _, id := range *set {
		if !slices.Contains(ids, id) {
			kept = append(kept, id)
		}
	}
	changed := len(kept) != len(*set)
	*set = kept
	return changed
}

func (r *Role) HasMember(kind AccountKind, id string) bool {
	return slices.Contains(r.Members(kind), id)
}
