package handler

import (
	"log/slog"
	"net/http"

	"tapadmin/internal/delivery/http/response"
	"tapadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProgramHandler holds dependencies for the reward-program builder handlers.
type ProgramHandler struct {
	uc     usecase.ProgramUsecase
	logger *slog.Logger
}

// NewProgramHandler is the constructor for ProgramHandler, injected by Fx.
func NewProgramHandler(uc usecase.ProgramUsecase, logger *slog.Logger) *ProgramHandler {
	return &ProgramHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCoffeeProgram handles the stamp-card program builder.
func (h *ProgramHandler) CreateCoffeeProgram(c echo.Context) error {
	var input *usecase.CoffeeProgramInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coffee program input")
	}

	if err := h.uc.CreateCoffeeProgram(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Coffee program created successfully")
}

// CreateVoucherProgram handles the recurring voucher program builder.
func (h *ProgramHandler) CreateVoucherProgram(c echo.Context) error {
	var input *usecase.VoucherProgramInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher program input")
	}

	id, err := h.uc.CreateVoucherProgram(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"rewardId": id}, "Voucher program created successfully")
}

// CreateTransactionReward handles the transaction-threshold program builder.
func (h *ProgramHandler) CreateTransactionReward(c echo.Context) error {
	var input *usecase.TransactionRewardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction reward input")
	}

	id, err := h.uc.CreateTransactionReward(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"rewardId": id}, "Transaction reward created successfully")
}

// CreateCashbackProgram handles the cashback program builder.
func (h *ProgramHandler) CreateCashbackProgram(c echo.Context) error {
	var input *usecase.CashbackProgramInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cashback program input")
	}

	if err := h.uc.CreateCashbackProgram(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Cashback program created successfully")
}

// CreateIntroductoryReward handles the Tap-funded introductory reward builder.
func (h *ProgramHandler) CreateIntroductoryReward(c echo.Context) error {
	var input *usecase.IntroductoryRewardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid introductory reward input")
	}

	id, err := h.uc.CreateIntroductoryReward(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"rewardId": id}, "Introductory reward created successfully")
}

// CreateCustomReward handles the fully custom reward builder.
func (h *ProgramHandler) CreateCustomReward(c echo.Context) error {
	var input *usecase.CustomRewardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid custom reward input")
	}

	id, err := h.uc.CreateCustomReward(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"rewardId": id}, "Custom reward created successfully")
}

// CreateNetworkReward handles the network reward builder.
func (h *ProgramHandler) CreateNetworkReward(c echo.Context) error {
	var input *usecase.NetworkRewardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid network reward input")
	}

	id, err := h.uc.CreateNetworkReward(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"rewardId": id}, "Network reward created successfully")
}
