package handlers

import (
	"net/http"
	"strconv"

	"disputeresolver/internal/controller/apperror"
	"disputeresolver/internal/domain/dispute"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	service *dispute.DisputeService
}

func NewDisputeHandler(s *dispute.DisputeService) DisputeHandler {
	return DisputeHandler{service: s}
}

// disputeResponse adds the outward-facing display identifier to the
// dispute payload. Clients address disputes by the numeric id; the
// display id is the human-readable form shown in support flows.
type disputeResponse struct {
	DisputeID string `json:"dispute_id"`
	dispute.Dispute
}

func toDisputeResponse(d dispute.Dispute) disputeResponse {
	return disputeResponse{DisputeID: d.DisplayID(), Dispute: d}
}

func toDisputeResponses(disputes []dispute.Dispute) []disputeResponse {
	out := make([]disputeResponse, 0, len(disputes))
	for _, d := range disputes {
		out = append(out, toDisputeResponse(d))
	}
	return out
}

type fileDisputeRequest struct {
	TransactionRef string  `json:"transaction_ref" binding:"required"`
	Counterparty   string  `json:"counterparty" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	FilerPhone     string  `json:"filer_phone" binding:"required"`
	Reason         string  `json:"reason"`
}

func (h *DisputeHandler) File(c *gin.Context) {
	var req fileDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	d, err := h.service.FileDispute(c, dispute.FileDisputeRequest{
		TransactionRef: req.TransactionRef,
		Counterparty:   req.Counterparty,
		Amount:         req.Amount,
		FilerPhone:     req.FilerPhone,
		Reason:         req.Reason,
	})
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toDisputeResponse(*d))
}

func (h *DisputeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("dispute_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "dispute_id must be an integer"})
		return
	}

	d, err := h.service.GetDispute(c, id)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDisputeResponse(*d))
}

func (h *DisputeHandler) ListByUser(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "phone is required"})
		return
	}

	disputes, err := h.service.ListDisputesByFiler(c, phone)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDisputeResponses(disputes))
}

func (h *DisputeHandler) GetEvents(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("dispute_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "dispute_id must be an integer"})
		return
	}

	events, err := h.service.GetDisputeEvents(c, id)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *DisputeHandler) DeleteByUser(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "phone is required"})
		return
	}

	if err := h.service.DeleteDisputesByFiler(c, phone); err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "disputes deleted"})
}
