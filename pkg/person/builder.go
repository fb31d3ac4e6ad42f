package person

// Builder assembles a Person step by step. First and last name are fixed at
// construction; everything else is optional.
type Builder struct {
	firstName string
	lastName  string
	age       int
	address   string
	phone     string
}

// NewBuilder starts a builder for the named person.
func NewBuilder(firstName, lastName string) *Builder {
	return &Builder{firstName: firstName, lastName: lastName}
}

// Age sets the age.
func (b *Builder) Age(age int) *Builder {
	b.age = age
	return b
}

// Address sets the address.
func (b *Builder) Address(address string) *Builder {
	b.address = address
	return b
}

// Phone sets the phone number.
func (b *Builder) Phone(phone string) *Builder {
	b.phone = phone
	return b
}

// Build returns a new Person. The builder can be reused afterwards.
func (b *Builder) Build() *Person {
	return &Person{
		FirstName: b.firstName,
		LastName:  b.lastName,
		Age:       b.age,
		Address:   b.address,
		Phone:     b.phone,
	}
}

// StandardEmployee presets a junior profile.
func StandardEmployee(firstName, lastName string) *Builder {
	return NewBuilder(firstName, lastName).
		Age(25).
		Address("Standard Address").
		Phone("555-0000")
}

// SeniorEmployee presets a senior profile.
func SeniorEmployee(firstName, lastName string) *Builder {
	return NewBuilder(firstName, lastName).
		Age(35).
		Address("Senior District").
		Phone("555-1000")
}

// Executive presets an executive profile.
func Executive(firstName, lastName string) *Builder {
	return NewBuilder(firstName, lastName).
		Age(45).
		Address("Executive Plaza").
		Phone("555-9000")
}
