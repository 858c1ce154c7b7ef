package quotation

import (
	"fmt"
	"strings"
)

type QuotationCreateRequest struct {
	Email         string `json:"email"`
	POL           string `json:"pol"`
	POD           string `json:"pod"`
	ContainerSize string `json:"container_size"`
	Shipper       string `json:"shipper_details"`
	Consignee     string `json:"consignee_details"`
	Terms         string `json:"terms"`
	Validity      string `json:"validity"`
}

func (r QuotationCreateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(r.POL) == "" {
		return fmt.Errorf("pol is required")
	}
	if strings.TrimSpace(r.POD) == "" {
		return fmt.Errorf("pod is required")
	}
	if strings.TrimSpace(r.Validity) == "" {
		return fmt.Errorf("validity is required")
	}
	return nil
}
