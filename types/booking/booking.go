package booking

import (
	"fmt"
	"strings"
)

// BookingCreateRequest carries a new shipment booking. JobNumber is optional:
// when zero the next free job number is assigned.
type BookingCreateRequest struct {
	JobNumber      int     `json:"job_number"`
	NominationDate string  `json:"nomination_date"`
	Consignee      string  `json:"consignee_details"`
	Shipper        string  `json:"shipper_details"`
	HBLNo          string  `json:"hbl_no"`
	MBLNo          string  `json:"mbl_no"`
	POL            string  `json:"pol"`
	POD            string  `json:"pod"`
	ContainerSize  string  `json:"container_size"`
	Agent          string  `json:"agent_details"`
	ShippingLine   string  `json:"shipping_line"`
	BuyRate        float64 `json:"buy_rate"`
	SellRate       float64 `json:"sell_rate"`
	ETD            string  `json:"etd"`
	ETA            string  `json:"eta"`
	SWB            string  `json:"swb"`
	IGMFiled       string  `json:"igm_filed"`
	CHA            string  `json:"cha"`
	Description    string  `json:"description"`
}

// BookingUpdateRequest carries a full edit of an existing booking. The job
// number comes from the URL, never from the body.
type BookingUpdateRequest struct {
	NominationDate string  `json:"nomination_date"`
	Consignee      string  `json:"consignee_details"`
	Shipper        string  `json:"shipper_details"`
	HBLNo          string  `json:"hbl_no"`
	MBLNo          string  `json:"mbl_no"`
	POL            string  `json:"pol"`
	POD            string  `json:"pod"`
	ContainerSize  string  `json:"container_size"`
	Agent          string  `json:"agent_details"`
	ShippingLine   string  `json:"shipping_line"`
	BuyRate        float64 `json:"buy_rate"`
	SellRate       float64 `json:"sell_rate"`
	ETD            string  `json:"etd"`
	ETA            string  `json:"eta"`
	SWB            string  `json:"swb"`
	IGMFiled       string  `json:"igm_filed"`
	CHA            string  `json:"cha"`
	Description    string  `json:"description"`
}

// StatusUpdateRequest moves a booking to a new lifecycle state.
type StatusUpdateRequest struct {
	JobNumber int    `json:"job_number"`
	Status    string `json:"status"`
}

func (r BookingCreateRequest) Validate() error {
	if strings.TrimSpace(r.Consignee) == "" {
		return fmt.Errorf("consignee_details is required")
	}
	if strings.TrimSpace(r.Shipper) == "" {
		return fmt.Errorf("shipper_details is required")
	}
	if strings.TrimSpace(r.POL) == "" {
		return fmt.Errorf("pol is required")
	}
	if strings.TrimSpace(r.POD) == "" {
		return fmt.Errorf("pod is required")
	}
	if r.JobNumber < 0 {
		return fmt.Errorf("job_number must be positive")
	}
	return nil
}

func (r BookingUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Consignee) == "" {
		return fmt.Errorf("consignee_details is required")
	}
	if strings.TrimSpace(r.Shipper) == "" {
		return fmt.Errorf("shipper_details is required")
	}
	if strings.TrimSpace(r.POL) == "" {
		return fmt.Errorf("pol is required")
	}
	if strings.TrimSpace(r.POD) == "" {
		return fmt.Errorf("pod is required")
	}
	return nil
}

func (r StatusUpdateRequest) Validate() error {
	if r.JobNumber <= 0 {
		return fmt.Errorf("job_number is required")
	}
	if strings.TrimSpace(r.Status) == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
