package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
)

// PolicyHandlers exposes the loaded authorization rules to business admins
type PolicyHandlers struct {
	policy domain.PolicyService
	writer *responses.Writer
}

func NewPolicyHandlers(policy domain.PolicyService, writer *responses.Writer) *PolicyHandlers {
	return &PolicyHandlers{policy: policy, writer: writer}
}

type policyRule struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Scope    string `json:"scope"`
}

// List handles GET /policies
func (h *PolicyHandlers) List(c *gin.Context) {
	policies, err := h.policy.GetPolicies()
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	rules := make([]policyRule, 0, len(policies))
	for _, p := range policies {
		if len(p) < 4 {
			continue
		}
		rules = append(rules, policyRule{Role: p[0], Resource: p[1], Action: p[2], Scope: p[3]})
	}
	h.writer.Success(c, gin.H{"policies": rules})
}
