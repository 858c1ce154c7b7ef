package kyc

import (
	"fmt"
	"strings"
)

// KYCCreateRequest carries a full customer onboarding submission.
type KYCCreateRequest struct {
	Date                string `json:"date"`
	Branch              string `json:"branch"`
	CustomerName        string `json:"customer_name"`
	CustomerAddress     string `json:"customer_address"`
	CustomerState       string `json:"customer_state"`
	CustomerPincode     string `json:"customer_pincode"`
	CustomerMobile      string `json:"customer_mobile"`
	CustomerWebsite     string `json:"customer_website"`
	CustomerType        string `json:"customer_type"`
	CustomerStatus      string `json:"customer_status"`
	YearOfEstablishment string `json:"year_of_establishment"`
	DirectorName        string `json:"director_name"`
	DirectorAddress     string `json:"director_address"`
	DirectorEmail       string `json:"director_email"`
	PANNumber           string `json:"pan_number"`
	AadhaarNumber       string `json:"aadhaar_number"`
	BranchOffices       string `json:"branch_offices"`
	BranchAddress       string `json:"branch_address"`
	OfficeAddress       string `json:"office_address"`
	GSTState            string `json:"gst_state"`
	GSTIN               string `json:"gstin"`
	Remarks             string `json:"remarks"`
}

func (r KYCCreateRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("customer_name is required")
	}
	if strings.TrimSpace(r.CustomerType) == "" {
		return fmt.Errorf("customer_type is required")
	}
	if strings.TrimSpace(r.CustomerStatus) == "" {
		return fmt.Errorf("customer_status is required")
	}
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(r.PANNumber) == "" && strings.TrimSpace(r.AadhaarNumber) == "" {
		return fmt.Errorf("either pan_number or aadhaar_number is required")
	}
	return nil
}
