package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/Olelouer/backend-chatop/internal/errors"
	"github.com/Olelouer/backend-chatop/internal/middleware"
	"github.com/Olelouer/backend-chatop/internal/rental/dto"
	"github.com/Olelouer/backend-chatop/internal/rental/service"
)

type RentalHandler struct {
	rentalService *service.RentalService
}

func NewRentalHandler(rentalService *service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

func (h *RentalHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	input, picture, err := parseRentalForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.rentalService.Create(c.Context(), user.ID, input, picture); err != nil {
		return rentalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Rental created !"})
}

func (h *RentalHandler) GetAll(c *fiber.Ctx) error {
	rentals, err := h.rentalService.GetAll(c.Context())
	if err != nil {
		return rentalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(rentals)
}

func (h *RentalHandler) GetByID(c *fiber.Ctx) error {
	rental, err := h.rentalService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return rentalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(rental)
}

func (h *RentalHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	input, picture, err := parseRentalForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.rentalService.Update(c.Context(), c.Params("id"), user.ID, input, picture); err != nil {
		return rentalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Rental updated !"})
}

// parseRentalForm reads the multipart fields the frontend posts. The picture
// part is optional.
func parseRentalForm(c *fiber.Ctx) (dto.RentalInput, *dto.PictureFile, error) {
	surface, err := strconv.Atoi(c.FormValue("surface"))
	if err != nil {
		return dto.RentalInput{}, nil, autherror.ErrInvalidInput
	}

	price, err := strconv.Atoi(c.FormValue("price"))
	if err != nil {
		return dto.RentalInput{}, nil, autherror.ErrInvalidInput
	}

	input := dto.RentalInput{
		Name:        c.FormValue("name"),
		Surface:     surface,
		Price:       price,
		Description: c.FormValue("description"),
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		// No picture part in the form.
		return input, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dto.RentalInput{}, nil, autherror.ErrInvalidInput
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return dto.RentalInput{}, nil, autherror.ErrInvalidInput
	}

	return input, &dto.PictureFile{Filename: fileHeader.Filename, Content: content}, nil
}

func rentalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrEntityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
