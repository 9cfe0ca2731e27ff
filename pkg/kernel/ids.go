package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type CategoryID string

func NewCategoryID(id string) CategoryID { return CategoryID(id) }
func (c CategoryID) String() string      { return string(c) }
func (c CategoryID) IsEmpty() bool       { return string(c) == "" }

type CountryID string

func NewCountryID(id string) CountryID { return CountryID(id) }
func (c CountryID) String() string     { return string(c) }
func (c CountryID) IsEmpty() bool      { return string(c) == "" }

type ContactID string

func NewContactID(id string) ContactID { return ContactID(id) }
func (c ContactID) String() string     { return string(c) }
func (c ContactID) IsEmpty() bool      { return string(c) == "" }
