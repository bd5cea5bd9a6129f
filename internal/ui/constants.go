package ui

// Fixed sizes for the window, forms and dialogs. The layout targets a
// phone-shaped portrait window.
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	LoginFormWidth     float32 = 320
	LoginFormHeight    float32 = 320
	RegisterFormHeight float32 = 440

	DetailDialogWidth    float32 = 380
	DetailDialogHeight   float32 = 520
	CheckoutDialogHeight float32 = 620

	SettingsDialogWidth  float32 = 380
	SettingsDialogHeight float32 = 320

	DetailImageSize float32 = 180
)

// MaxCartQuantity caps the quantity stepper on the product detail view. The
// backend applies its own stock limits on top.
const MaxCartQuantity = 10
