package domain

type transition struct {
	from AppointmentStatus
	to   AppointmentStatus
}

// allowedTransitions lists who may move an appointment between statuses.
// Anything missing from the table is forbidden.
var allowedTransitions = map[transition]map[Role]bool{
	{StatusPending, StatusCanceled}:    {RoleStudent: true, RoleProfessor: true},
	{StatusPending, StatusConfirmed}:   {RoleProfessor: true},
	{StatusConfirmed, StatusCompleted}: {RoleProfessor: true},
	{StatusConfirmed, StatusCanceled}:  {RoleProfessor: true},
}

// CanTransition reports whether role may move an appointment from one status to another
func CanTransition(from, to AppointmentStatus, role Role) bool {
	return allowedTransitions[transition{from: from, to: to}][role]
}
