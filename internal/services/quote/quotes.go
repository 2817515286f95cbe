package quote

// Quote is a motivational quote shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// fallbackQuotes is served when the upstream quote API is unreachable.
var fallbackQuotes = []Quote{
	{Text: "Discipline is doing what needs to be done, even if you don't want to do it.", Author: "Unknown"},
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{Text: "Don't stop when you're tired. Stop when you're done.", Author: "David Goggins"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "Great things are not done by impulse, but by a series of small things brought together.", Author: "Vincent Van Gogh"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Push yourself, because no one else is going to do it for you.", Author: "Unknown"},
	{Text: "Great things never came from comfort zones.", Author: "Unknown"},
	{Text: "Dream it. Wish it. Do it.", Author: "Unknown"},
	{Text: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown"},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown"},
	{Text: "Don't stop until you're proud.", Author: "Unknown"},
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Aristotle"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Opportunities don't happen, you create them.", Author: "Chris Grosser"},
	{Text: "Hardships often prepare ordinary people for an extraordinary destiny.", Author: "C.S. Lewis"},
	{Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{Text: "Don't wait. The time will never be just right.", Author: "Napoleon Hill"},
	{Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "I find that the harder I work, the more luck I seem to have.", Author: "Thomas Jefferson"},
	{Text: "Success is not final, failure is not fatal: It is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "If you want to live a happy life, tie it to a goal, not to people or things.", Author: "Albert Einstein"},
	{Text: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
	{Text: "If you can dream it, you can do it.", Author: "Walt Disney"},
	{Text: "The only person you are destined to become is the person you decide to be.", Author: "Ralph Waldo Emerson"},
	{Text: "Go the extra mile. It's never crowded there.", Author: "Dr. Wayne D. Dyer"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	{Text: "You miss 100% of the shots you don't take.", Author: "Wayne Gretzky"},
	{Text: "It is never too late to be what you might have been.", Author: "George Eliot"},
	{Text: "Don't let yesterday take up too much of today.", Author: "Will Rogers"},
	{Text: "It's not whether you get knocked down, it's whether you get up.", Author: "Vince Lombardi"},
	{Text: "Failure will never overtake me if my determination to succeed is strong enough.", Author: "Og Mandino"},
	{Text: "Knowing is not enough; we must apply. Wishing is not enough; we must do.", Author: "Johann Wolfgang Von Goethe"},
	{Text: "We may encounter many defeats but we must not be defeated.", Author: "Maya Angelou"},
}
