package dto

type CreateProductRequest struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	CurrentStockLevel  int    `json:"current_stock_level"`
}

// UpdateProductRequest uses pointers so an absent field can be told apart
// from a zero value: absent fields keep their stored values (field-merge
// contract; the system this replaces overwrote the whole record instead).
type UpdateProductRequest struct {
	ProductName        *string `json:"product_name"`
	ProductDescription *string `json:"product_description"`
	CurrentStockLevel  *int    `json:"current_stock_level"`
	Status             *bool   `json:"status"`
}

type DeleteProductResponse struct {
	Message        string `json:"message"`
	DeletedProduct any    `json:"deletedProduct"`
}
