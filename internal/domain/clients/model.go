package clients

// Client es un cliente del hato (tabla clientes). Lo referencian las facturas.
type Client struct {
	Code    string
	Name    string
	Phone   string
	RIF     string
	Email   string
	Address string
}
