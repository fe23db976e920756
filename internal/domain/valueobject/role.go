package valueobject

const roleNameMaxLength = 50

type RoleID string

func NewRoleID(v string) (RoleID, error) { return parseULID[RoleID]("role id", v) }

func (id RoleID) String() string { return string(id) }

// RoleName is the unique role label, e.g. ROLE_ADMIN.
type RoleName string

func NewRoleName(v string) (RoleName, error) {
	if err := notBlank("role name", v); err != nil {
		return "", err
	}
	if err := maxLength("role name", v, roleNameMaxLength); err != nil {
		return "", err
	}
	return RoleName(v), nil
}

func (n RoleName) String() string { return string(n) }
