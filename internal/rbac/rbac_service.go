package rbac

import (
	"sort"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// AnyCompany is the policy domain that applies to every company.
const AnyCompany = "*"

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Permissions(role, companyID string) ([]PermissionResponse, error)
	Reload() error
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		enforcer: enforcer,
		logger:   l,
	}
}

// SubjectFromRole maps a token role to its policy subject, e.g. "admin" to "role:admin".
func SubjectFromRole(role string) string {
	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		role = "anonymous"
	}
	return "role:" + role
}

func DomainFromCompanyID(companyID string) string {
	return strings.ToLower(strings.TrimSpace(companyID))
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject := SubjectFromRole(req.Role)
	domain := DomainFromCompanyID(req.CompanyID)

	allowed, err := s.enforcer.Enforce(subject, domain, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("subject", subject),
			zap.String("company_id", domain),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("subject", subject),
		zap.String("company_id", domain),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists the resource/action pairs a role holds in a company,
// including inherited ones.
func (s *service) Permissions(role, companyID string) ([]PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	domain := DomainFromCompanyID(companyID)
	rules, err := s.enforcer.GetImplicitPermissionsForUser(SubjectFromRole(role))
	if err != nil {
		return nil, err
	}

	seen := make(map[PermissionResponse]struct{}, len(rules))
	perms := make([]PermissionResponse, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 4 {
			continue
		}
		if rule[1] != AnyCompany && rule[1] != domain {
			continue
		}
		p := PermissionResponse{Resource: rule[2], Action: rule[3]}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}

	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}

// Reload re-reads the policy file.
func (s *service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enforcer.LoadPolicy(); err != nil {
		return err
	}
	s.logger.Info("rbac policy reloaded")
	return nil
}
