package domain

// Resource identifies what a principal is acting on.
type Resource string

const (
	ResourceJob         Resource = "job"
	ResourceApplication Resource = "application"
	ResourceProfile     Resource = "profile"
	ResourceSiteContent Resource = "site_content"
)

// Operation identifies the action being attempted.
type Operation string

const (
	OpReadActive   Operation = "read_active"   // jobs: read an active posting
	OpReadInactive Operation = "read_inactive" // jobs: read an inactive posting
	OpWrite        Operation = "write"         // create/update/delete the resource
	OpCreate       Operation = "create"        // applications: apply
	OpRead         Operation = "read"          // applications/profiles: read
	OpListForJob   Operation = "list_for_job"  // applications: list a job's applicants
	OpStatusWrite  Operation = "status_write"  // applications: change status
)

// Allowed evaluates the role/ownership access table. "owner" means the
// principal owns the resource or its parent: for a job, they own the
// posting; for an application, they are the applying candidate or they own
// the parent job; for a profile, it is their own.
//
// Every usecase consults this before issuing a repository mutation. The
// database enforces the same rules again (row ownership predicates in SQL),
// so neither layer has to trust the other.
func Allowed(role Role, res Resource, op Operation, owner bool) bool {
	if role == RoleAdmin {
		// Admin may do everything except create applications, which only
		// a candidate can do for themself.
		return !(res == ResourceApplication && op == OpCreate)
	}

	switch res {
	case ResourceJob:
		switch op {
		case OpReadActive:
			return true
		case OpReadInactive, OpWrite:
			return role == RoleEmployer && owner
		}

	case ResourceApplication:
		switch op {
		case OpCreate:
			return role == RoleCandidate && owner
		case OpRead:
			return (role == RoleCandidate || role == RoleEmployer) && owner
		case OpListForJob, OpStatusWrite:
			return role == RoleEmployer && owner
		}

	case ResourceProfile:
		switch op {
		case OpRead, OpWrite:
			return (role == RoleCandidate || role == RoleEmployer) && owner
		}

	case ResourceSiteContent:
		// Reads are public and never consult the table; writes are
		// admin-only and admins returned above.
		return false
	}

	return false
}
