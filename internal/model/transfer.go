package model

// TransferState is the observable state of a transfer process.
type TransferState string

const (
	TransferInitial      TransferState = "INITIAL"
	TransferProvisioning TransferState = "PROVISIONING"
	TransferRequested    TransferState = "REQUESTED"
	TransferStarted      TransferState = "STARTED"
	TransferCompleted    TransferState = "COMPLETED"
	TransferTerminated   TransferState = "TERMINATED"
)

// TransferRequest starts a transfer process under an existing agreement.
type TransferRequest struct {
	ContractID          string      `json:"contract_id"`
	CounterPartyAddress string      `json:"counter_party_address"`
	Protocol            string      `json:"protocol"`
	TransferType        string      `json:"transfer_type"`
	DataDestination     DataAddress `json:"data_destination"`
}

// TransferProcess is the handle plus last observed details of a transfer.
type TransferProcess struct {
	ID          string        `json:"id"`
	State       TransferState `json:"state,omitempty"`
	ErrorDetail string        `json:"error_detail,omitempty"`
}
