package rbac

import (
	"giya-service/internal/pkg/constvars"
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// routeModel matches a role against a path prefix policy with keyMatch, so
// "/counselor/*" covers every page below the counselor scope.
const routeModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj)
`

// RoutePolicies is the allow list of role-scoped prefixes.
var RoutePolicies = [][]string{
	{constvars.RoleAdmin, constvars.RouteScopeAdmin},
	{constvars.RoleAdmin, constvars.RouteScopeAdmin + "/*"},
	{constvars.RoleProfessional, constvars.RouteScopeCounselor},
	{constvars.RoleProfessional, constvars.RouteScopeCounselor + "/*"},
	{constvars.RoleCarer, constvars.RouteScopeCarer},
	{constvars.RoleCarer, constvars.RouteScopeCarer + "/*"},
}

func NewRouteEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(routeModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	_, err = enforcer.AddPolicies(RoutePolicies)
	if err != nil {
		return nil, err
	}
	return enforcer, nil
}

func MustNewRouteEnforcer() *casbin.Enforcer {
	enforcer, err := NewRouteEnforcer()
	if err != nil {
		log.Fatalf("Failed to build role enforcer: %s", err.Error())
	}
	log.Println("Successfully loaded role policies")
	return enforcer
}
